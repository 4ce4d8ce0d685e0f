package calendar

import "time"

// CellFlags are independent, non-exclusive tags on a grid cell.
type CellFlags struct {
	InCurrentPeriod bool
	IsToday         bool
	IsHoliday       bool
	IsWeekend       bool
}

// Tone is the text treatment a cell's day number gets.
type Tone string

const (
	ToneMuted  Tone = "muted"
	ToneRed    Tone = "red"
	ToneToday  Tone = "today"
	ToneNormal Tone = "normal"
)

// Tone resolves the flags into one display treatment. Overflow days are
// muted first; holidays and Sundays win over today.
func (f CellFlags) Tone() Tone {
	switch {
	case !f.InCurrentPeriod:
		return ToneMuted
	case f.IsHoliday || f.IsWeekend:
		return ToneRed
	case f.IsToday:
		return ToneToday
	default:
		return ToneNormal
	}
}

// Classifier tags cells against a holiday table.
type Classifier struct {
	Holidays HolidayTable
}

// NewClassifier returns a Classifier over holidays, or DefaultHolidays when nil.
func NewClassifier(holidays HolidayTable) *Classifier {
	if holidays == nil {
		holidays = DefaultHolidays
	}
	return &Classifier{Holidays: holidays}
}

// Classify tags cell relative to the anchor month and today.
//
// Only Sunday counts as weekend. Saturday keeps the normal colour.
func (c *Classifier) Classify(cell, anchor, today time.Time) CellFlags {
	holidays := c.Holidays
	if holidays == nil {
		holidays = DefaultHolidays
	}
	return CellFlags{
		InCurrentPeriod: SameMonth(cell, anchor),
		IsToday:         SameDay(cell, today),
		IsHoliday:       holidays.IsHolidayDate(cell),
		IsWeekend:       cell.Weekday() == time.Sunday,
	}
}

// Classify uses DefaultHolidays.
func Classify(cell, anchor, today time.Time) CellFlags {
	return NewClassifier(nil).Classify(cell, anchor, today)
}

// SameDay compares calendar days, ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth compares year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Cell is a classified grid slot. Markers are filled in by the schedule overlay.
type Cell struct {
	Date  time.Time
	Flags CellFlags
}

// Cells classifies every date in grid.
func (c *Classifier) Cells(grid []time.Time, anchor, today time.Time) []Cell {
	cells := make([]Cell, len(grid))
	for i, d := range grid {
		cells[i] = Cell{Date: d, Flags: c.Classify(d, anchor, today)}
	}
	return cells
}
