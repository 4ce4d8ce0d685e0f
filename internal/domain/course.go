package domain

import (
	"fmt"
	"time"
)

// LegacyYear marks a course saved before year/semester scoping existed.
const LegacyYear = 0

type Course struct {
	ID        string
	Title     string
	Professor string
	Room      string
	Weekday   string
	Period    int
	Color     Color
	Notes     string
	Year      int
	Semester  Semester

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotKey identifies a timetable position. At most one course may occupy a key.
type SlotKey struct {
	Year     int
	Semester Semester
	Weekday  string
	Period   int
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%d %s %s %d限", k.Year, k.Semester.DisplayName(), k.Weekday, k.Period)
}

// Slot returns the composite key the course occupies.
func (c *Course) Slot() SlotKey {
	return SlotKey{Year: c.Year, Semester: c.Semester, Weekday: c.Weekday, Period: c.Period}
}

// IsLegacy reports whether the course still carries the pre-migration year.
func (c *Course) IsLegacy() bool {
	return c.Year == LegacyYear
}

func (c *Course) Validate() error {
	v := &ValidationError{}
	if c.Title == "" {
		v.Add("title", "title is required")
	}
	if !ValidCourseWeekday(c.Weekday) {
		v.Add("weekday", fmt.Sprintf("weekday %q must be one of 月 火 水 木 金 土", c.Weekday))
	}
	if c.Period < MinPeriod || c.Period > MaxPeriod {
		v.Add("period", fmt.Sprintf("period must be between %d and %d", MinPeriod, MaxPeriod))
	}
	if c.Year <= 0 {
		v.Add("year", "year is required")
	}
	if !ValidSemesters[string(c.Semester)] {
		v.Add("semester", "semester must be first or second")
	}
	if !ValidColors[string(c.Color)] {
		v.Add("color", "unknown color "+string(c.Color))
	}
	return v.OrNil()
}
