package task

import "slices"

type Category string

const (
	CategoryDaily   Category = "Daily"
	CategoryWeekly  Category = "Weekly"
	CategorySpecial Category = "Special"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryDaily, CategoryWeekly, CategorySpecial}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

const (
	MaxTitleLen       = 34
	MaxDescriptionLen = 140
)

// Task is something a user can do to earn stars.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Stars       int      `json:"stars"`
	Category    Category `json:"category"`
}

// Draft carries every Task field except the id, which the store assigns.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Stars       int      `json:"stars"`
	Category    Category `json:"category"`
}

func (d Draft) withID(id int) Task {
	return Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Stars:       d.Stars,
		Category:    d.Category,
	}
}

// nextID is one past the largest id currently held.
func nextID(tasks []Task) int {
	top := 0
	for _, t := range tasks {
		top = max(top, t.ID)
	}
	return top + 1
}
