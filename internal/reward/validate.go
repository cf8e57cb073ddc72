package reward

import (
	"strconv"

	"github.com/raygaledev/gold-starz/internal/form"
)

// Form is the raw input of the add/edit reward screen.
type Form struct {
	Description string `json:"description" yaml:"description"`
	Stars       string `json:"stars" yaml:"stars"`
}

func Validate(f Form) (Draft, error) {
	var errs form.Errors

	d := Draft{
		Description: form.Text(&errs, "description", "Description", f.Description, true, MaxDescriptionLen),
		Stars:       form.Stars(&errs, "stars", f.Stars),
	}

	if err := errs.Err(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// FormFor pre-fills the edit screen from an existing reward.
func FormFor(r Reward) Form {
	return Form{Description: r.Description, Stars: strconv.Itoa(r.Stars)}
}
