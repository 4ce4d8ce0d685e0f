package calendar

import "time"

const (
	// GridColumns is one column per weekday, Sunday first.
	GridColumns = 7
	// GridRows is fixed at six so every month fits, whatever its length.
	GridRows = 6
	// GridCells is the number of dates in every month grid.
	GridCells = GridColumns * GridRows

	// YearWindowRadius is how many years either side of the centre the
	// year view keeps scrollable.
	YearWindowRadius = 10
)

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight on the 1st of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month, handling leap years.
func DaysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// FirstWeekdayOffset is the grid index (0 = Sunday) of the 1st of anchor's month.
func FirstWeekdayOffset(anchor time.Time) int {
	return int(StartOfMonth(anchor).Weekday())
}

// Builder derives calendar grids. Now supplies the fallback anchor.
type Builder struct {
	Now func() time.Time
}

// NewBuilder returns a Builder using now, or time.Now when now is nil.
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{Now: now}
}

func (b *Builder) anchor(t time.Time) time.Time {
	if !t.IsZero() {
		return t
	}
	if b == nil || b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// MonthGrid returns exactly GridCells consecutive midnights covering
// anchor's month: the trailing days of the previous month, the month itself,
// then padding into the next month. A zero anchor falls back to Now.
//
// Dates are built with time.Date in the anchor's location so a DST change
// inside the grid never shifts a cell off midnight.
func (b *Builder) MonthGrid(anchor time.Time) []time.Time {
	first := StartOfMonth(b.anchor(anchor))
	offset := int(first.Weekday())
	y, m, loc := first.Year(), first.Month(), first.Location()

	grid := make([]time.Time, GridCells)
	for i := range grid {
		// time.Date normalizes day overflow in both directions, which
		// rolls December into January and day 0 into the prior month.
		grid[i] = time.Date(y, m, 1+i-offset, 0, 0, 0, 0, loc)
	}
	return grid
}

// MonthPage is one month of a year grid.
type MonthPage struct {
	Month time.Time
	Days  []time.Time
}

// YearGrid expands year into its twelve month grids.
func (b *Builder) YearGrid(year int, loc *time.Location) []MonthPage {
	if loc == nil {
		loc = b.anchor(time.Time{}).Location()
	}
	pages := make([]MonthPage, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, loc)
		pages = append(pages, MonthPage{Month: first, Days: b.MonthGrid(first)})
	}
	return pages
}

// YearWindow returns the scrollable years centre-10 through centre+10.
func YearWindow(center int) []int {
	years := make([]int, 0, 2*YearWindowRadius+1)
	for y := center - YearWindowRadius; y <= center+YearWindowRadius; y++ {
		years = append(years, y)
	}
	return years
}

// MonthGrid builds a grid with the default clock.
func MonthGrid(anchor time.Time) []time.Time {
	return NewBuilder(nil).MonthGrid(anchor)
}

// ShiftMonth moves anchor by n months, clamping to the 1st so that
// January 31 + 1 month is February, not March.
func ShiftMonth(anchor time.Time, n int) time.Time {
	return StartOfMonth(anchor).AddDate(0, n, 0)
}
