// Package timetable resolves courses onto the weekday × period grid of a
// (year, semester) offering and guards the one-course-per-slot rule.
package timetable

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// ErrSlotOccupied is returned when another course already holds the target slot.
var ErrSlotOccupied = errors.New("timetable slot is already occupied")

// SlotConflictError names the course occupying a slot.
type SlotConflictError struct {
	Slot     domain.SlotKey
	Occupant domain.Course
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: %s is already held by %q", ErrSlotOccupied, e.Slot, e.Occupant.Title)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotOccupied
}

// Offering returns the courses of one year and semester, in input order.
func Offering(courses []domain.Course, year int, semester domain.Semester) []domain.Course {
	var out []domain.Course
	for _, c := range courses {
		if c.Year == year && c.Semester == semester {
			out = append(out, c)
		}
	}
	return out
}

// Lookup returns the course at key, if any.
func Lookup(courses []domain.Course, key domain.SlotKey) (domain.Course, bool) {
	for _, c := range courses {
		if c.Slot() == key {
			return c, true
		}
	}
	return domain.Course{}, false
}

// CheckSlot reports whether candidate may occupy its slot. A course already
// holding the slot is only a conflict when it is a different course, so an
// edit that leaves the slot unchanged passes.
func CheckSlot(courses []domain.Course, candidate domain.Course) error {
	key := candidate.Slot()
	for _, c := range courses {
		if c.Slot() != key {
			continue
		}
		if candidate.ID != "" && c.ID == candidate.ID {
			continue
		}
		return &SlotConflictError{Slot: key, Occupant: c}
	}
	return nil
}

// Collision is a slot held by more than one course. Kept is the course the
// grid shows; Shadowed is hidden behind it.
type Collision struct {
	Slot     domain.SlotKey
	Kept     domain.Course
	Shadowed domain.Course
}

// Collisions lists every course whose slot is already held by an earlier
// course in input order, which is the one BuildGrid keeps.
func Collisions(courses []domain.Course) []Collision {
	first := make(map[domain.SlotKey]domain.Course, len(courses))
	var out []Collision
	for _, c := range courses {
		key := c.Slot()
		if kept, ok := first[key]; ok {
			out = append(out, Collision{Slot: key, Kept: kept, Shadowed: c})
			continue
		}
		first[key] = c
	}
	return out
}

// Position addresses a cell by weekday label and period.
type Position struct {
	Weekday string
	Period  int
}

// Grid is the (weekday, period) matrix for one offering.
type Grid struct {
	Year     int
	Semester domain.Semester
	Weekdays []string
	Periods  int
	cells    map[Position]domain.Course
}

// At returns the course at weekday/period.
func (g *Grid) At(weekday string, period int) (domain.Course, bool) {
	c, ok := g.cells[Position{Weekday: weekday, Period: period}]
	return c, ok
}

// Len is the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// BuildGrid places the offering of year/semester onto the weekday columns.
// Courses on a weekday not shown (Saturday when hidden) are left out and
// returned as hidden so callers can warn about them.
func BuildGrid(courses []domain.Course, year int, semester domain.Semester, weekdays []string) (*Grid, []domain.Course) {
	shown := make(map[string]bool, len(weekdays))
	for _, w := range weekdays {
		shown[w] = true
	}
	g := &Grid{
		Year:     year,
		Semester: semester,
		Weekdays: weekdays,
		Periods:  domain.MaxPeriod,
		cells:    make(map[Position]domain.Course),
	}
	var hidden []domain.Course
	for _, c := range Offering(courses, year, semester) {
		if !shown[c.Weekday] {
			hidden = append(hidden, c)
			continue
		}
		pos := Position{Weekday: c.Weekday, Period: c.Period}
		if _, taken := g.cells[pos]; taken {
			// First one wins; CheckSlot keeps this from happening for
			// records written through the service.
			continue
		}
		g.cells[pos] = c
	}
	return g, hidden
}

// Weekdays returns the timetable columns, Monday first.
func Weekdays(showSaturday bool) []string {
	if showSaturday {
		return append([]string(nil), domain.CourseWeekdays...)
	}
	return append([]string(nil), domain.CourseWeekdays[:5]...)
}
