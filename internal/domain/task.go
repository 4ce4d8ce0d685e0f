package domain

import "time"

type Task struct {
	ID        string
	Title     string
	Notes     string
	Date      time.Time
	Priority  TaskPriority
	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToggleCompleted flips the completion flag.
func (t *Task) ToggleCompleted(now time.Time) {
	t.Completed = !t.Completed
	t.UpdatedAt = now
}

func (t *Task) Validate() error {
	v := &ValidationError{}
	if t.Title == "" {
		v.Add("title", "title is required")
	}
	if t.Date.IsZero() {
		v.Add("date", "due date is required")
	}
	if !ValidPriorities[string(t.Priority)] {
		v.Add("priority", "priority must be one of low, medium, high")
	}
	return v.OrNil()
}
