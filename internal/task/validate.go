package task

import (
	"github.com/raygaledev/gold-starz/internal/form"
)

// Form is the raw input of the "Add New Task" screen.
type Form struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Stars       string `json:"stars" yaml:"stars"`
	Category    string `json:"category" yaml:"category"`
}

// Validate turns raw input into a Draft. On failure the error is a
// form.Errors listing the first problem of each field.
func Validate(f Form) (Draft, error) {
	var errs form.Errors

	d := Draft{
		Title:       form.Text(&errs, "title", "Title", f.Title, true, MaxTitleLen),
		Description: form.Text(&errs, "description", "Description", f.Description, false, MaxDescriptionLen),
		Stars:       form.Stars(&errs, "stars", f.Stars),
		Category:    Category(f.Category),
	}
	if !d.Category.Valid() {
		errs.Add("category", "Category must be one of Daily, Weekly, Special")
	}

	if err := errs.Err(); err != nil {
		return Draft{}, err
	}
	return d, nil
}
