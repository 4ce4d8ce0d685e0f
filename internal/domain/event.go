package domain

import "time"

type Event struct {
	ID        string
	Title     string
	Notes     string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	// AllDay events keep their start/end but list before timed events.
	AllDay bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a user must supply.
func (e *Event) Validate() error {
	v := &ValidationError{}
	if e.Title == "" {
		v.Add("title", "title is required")
	}
	if e.Date.IsZero() {
		v.Add("date", "date is required")
	}
	if !e.AllDay && e.EndTime.Before(e.StartTime) {
		v.Add("end", "end time must not be before start time")
	}
	return v.OrNil()
}
