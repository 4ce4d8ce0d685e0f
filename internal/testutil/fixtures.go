package testutil

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/google/uuid"
)

// Day returns local midnight for the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// At returns a local wall-clock time on the given date.
func At(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)
}

// now is truncated to whole seconds so values survive an RFC3339 round trip.
func now() time.Time {
	return time.Now().Truncate(time.Second)
}

// Event options
type EventOption func(*domain.Event)

func WithEventTimes(startHour, endHour int) EventOption {
	return func(e *domain.Event) {
		e.StartTime = At(e.Date, startHour, 0)
		e.EndTime = At(e.Date, endHour, 0)
	}
}

func WithAllDay() EventOption {
	return func(e *domain.Event) {
		e.AllDay = true
	}
}

func WithEventNotes(n string) EventOption {
	return func(e *domain.Event) {
		e.Notes = n
	}
}

func NewTestEvent(title string, date time.Time, opts ...EventOption) *domain.Event {
	ts := now()
	e := &domain.Event{
		ID:        uuid.New().String(),
		Title:     title,
		Date:      date,
		StartTime: At(date, 10, 0),
		EndTime:   At(date, 11, 0),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Task options
type TaskOption func(*domain.Task)

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(title string, date time.Time, opts ...TaskOption) *domain.Task {
	ts := now()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Date:      date,
		Priority:  domain.PriorityMedium,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Shift options
type ShiftOption func(*domain.Shift)

func WithBreak(minutes int) ShiftOption {
	return func(s *domain.Shift) {
		s.BreakMinutes = minutes
	}
}

func WithShiftNotes(n string) ShiftOption {
	return func(s *domain.Shift) {
		s.Notes = n
	}
}

// NewTestShift creates a shift on date from startHour:00 to endHour:00.
func NewTestShift(workplaceID string, date time.Time, startHour, endHour int, opts ...ShiftOption) *domain.Shift {
	ts := now()
	s := &domain.Shift{
		ID:          uuid.New().String(),
		Date:        date,
		StartTime:   At(date, startHour, 0),
		EndTime:     At(date, endHour, 0),
		WorkplaceID: workplaceID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workplace options
type WorkplaceOption func(*domain.Workplace)

func WithRate(rate float64) WorkplaceOption {
	return func(w *domain.Workplace) {
		w.HourlyRate = rate
	}
}

func WithWorkplaceColor(c domain.Color) WorkplaceOption {
	return func(w *domain.Workplace) {
		w.Color = c
	}
}

func NewTestWorkplace(name string, opts ...WorkplaceOption) *domain.Workplace {
	ts := now()
	w := &domain.Workplace{
		ID:         uuid.New().String(),
		Name:       name,
		Color:      domain.ColorBlue,
		HourlyRate: 1000,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Course options
type CourseOption func(*domain.Course)

func WithTerm(year int, sem domain.Semester) CourseOption {
	return func(c *domain.Course) {
		c.Year = year
		c.Semester = sem
	}
}

func WithRoom(room string) CourseOption {
	return func(c *domain.Course) {
		c.Room = room
	}
}

func WithProfessor(name string) CourseOption {
	return func(c *domain.Course) {
		c.Professor = name
	}
}

// WithLegacyTerm marks the course as saved before term scoping.
func WithLegacyTerm() CourseOption {
	return func(c *domain.Course) {
		c.Year = domain.LegacyYear
		c.Semester = domain.SemesterFirst
	}
}

func NewTestCourse(title, weekday string, period int, opts ...CourseOption) *domain.Course {
	ts := now()
	c := &domain.Course{
		ID:        uuid.New().String(),
		Title:     title,
		Weekday:   weekday,
		Period:    period,
		Color:     domain.ColorBlue,
		Year:      2025,
		Semester:  domain.SemesterFirst,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
