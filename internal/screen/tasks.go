package screen

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/raygaledev/gold-starz/internal/task"
)

func TaskList(p *message.Printer, tasks []task.Task) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}

		h.raw(`<section class="section-header"><div><h2>Available Tasks</h2><p>Complete tasks to earn stars!</p></div>`)
		h.raw(`<a class="add-button" href="/tasks/new">+ Add Task</a></section>`)

		if len(tasks) == 0 {
			h.raw(`<div class="empty-state"><p class="empty-title">No tasks yet!</p>`)
			h.raw(`<p>Get started by adding your first task using the + Add Task button above.</p></div>`)
			return h.err
		}

		h.raw(`<ul class="tasks">`)
		for _, t := range tasks {
			h.raw(`<li class="task-item"><div class="task-header"><span class="task-title">`)
			h.text(t.Title)
			h.raw(`</span><span class="star-badge">`)
			h.text(Stars(p, t.Stars))
			h.raw(`</span></div>`)
			if t.Description != "" {
				h.raw(`<p class="task-description">`)
				h.text(t.Description)
				h.raw(`</p>`)
			}
			h.raw(`<span class="category-badge">`)
			h.text(string(t.Category))
			h.raw(`</span></li>`)
		}
		h.raw(`</ul>`)
		return h.err
	})
}

type TaskFormView struct {
	Values task.Form
	Errors map[string]string
}

// TaskForm is the "Add New Task" screen.
func TaskForm(v TaskFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		errs := v.Errors

		h.raw(`<form class="form" method="post" action="/tasks/new">`)

		h.raw(`<label class="form-field">Task Title<input type="text" name="title" placeholder="Enter task title"`)
		h.attr("maxlength", itoa(task.MaxTitleLen))
		h.attr("class", inputClass(errs, "title", "input"))
		h.attr("value", v.Values.Title)
		h.raw(`></label>`)
		h.fieldError(errs, "title")

		h.raw(`<label class="form-field">Description<textarea name="description" rows="3" placeholder="Enter task description"`)
		h.attr("maxlength", itoa(task.MaxDescriptionLen))
		h.attr("class", inputClass(errs, "description", "input text-area"))
		h.raw(`>`)
		h.text(v.Values.Description)
		h.raw(`</textarea></label>`)
		h.fieldError(errs, "description")

		h.raw(`<label class="form-field">Stars<input type="text" name="stars" inputmode="numeric" maxlength="7" placeholder="Enter star value"`)
		h.attr("class", inputClass(errs, "stars", "input"))
		h.attr("value", v.Values.Stars)
		h.raw(`></label>`)
		h.fieldError(errs, "stars")

		selected := task.Category(v.Values.Category)
		if !selected.Valid() {
			selected = task.CategoryDaily
		}
		h.raw(`<fieldset class="form-field category-buttons"><legend>Category</legend>`)
		for _, c := range task.Categories {
			h.raw(`<label class="category-button"><input type="radio" name="category"`)
			h.attr("value", string(c))
			if c == selected {
				h.raw(` checked`)
			}
			h.raw(`>`)
			h.text(string(c))
			h.raw(`</label>`)
		}
		h.raw(`</fieldset>`)
		h.fieldError(errs, "category")

		h.raw(`<div class="form-actions"><a href="/tasks">Cancel</a><button type="submit" class="save-button">Save</button></div>`)
		h.raw(`</form>`)
		return h.err
	})
}
