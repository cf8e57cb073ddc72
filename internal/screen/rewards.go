package screen

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/raygaledev/gold-starz/internal/reward"
)

type RewardFormView struct {
	// ID is zero for a new reward.
	ID     int
	Values reward.Form
	Errors map[string]string
}

func (v RewardFormView) Title() string {
	if v.ID != 0 {
		return "Edit Reward"
	}
	return "Add New Reward"
}

// RewardForm is the add/edit reward screen. Editing adds a delete button.
func RewardForm(v RewardFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		errs := v.Errors

		action := "/rewards/new"
		if v.ID != 0 {
			action += "?id=" + itoa(v.ID)
		}

		h.raw(`<form class="form" method="post"`)
		h.attr("action", action)
		h.raw(`>`)

		h.raw(`<label class="form-field">Description<textarea name="description" rows="3" placeholder="Enter reward description"`)
		h.attr("maxlength", itoa(reward.MaxDescriptionLen))
		h.attr("class", inputClass(errs, "description", "input text-area"))
		h.raw(`>`)
		h.text(v.Values.Description)
		h.raw(`</textarea></label>`)
		h.fieldError(errs, "description")

		h.raw(`<label class="form-field">Stars Required<input type="text" name="stars" inputmode="numeric" maxlength="7" placeholder="Enter star value"`)
		h.attr("class", inputClass(errs, "stars", "input"))
		h.attr("value", v.Values.Stars)
		h.raw(`></label>`)
		h.fieldError(errs, "stars")

		h.raw(`<div class="form-actions"><a href="/">Cancel</a><button type="submit" class="save-button">Save</button></div>`)
		h.raw(`</form>`)

		if v.ID != 0 {
			h.raw(`<form method="post"`)
			h.attr("action", "/rewards/delete?id="+itoa(v.ID))
			h.raw(`><button type="submit" class="delete-button">Delete Reward</button></form>`)
		}
		return h.err
	})
}
