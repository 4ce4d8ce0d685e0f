// Package schedule overlays events, tasks and shifts onto calendar days and
// months. Every function takes snapshots and returns fresh slices; callers'
// collections are never reordered or modified.
package schedule

import (
	"sort"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
)

// DayItems is everything scheduled on one calendar day, in listing order.
type DayItems struct {
	Date   time.Time
	Events []domain.Event
	Tasks  []domain.Task
	Shifts []domain.Shift
}

// IsEmpty reports whether nothing is scheduled.
func (d DayItems) IsEmpty() bool {
	return len(d.Events) == 0 && len(d.Tasks) == 0 && len(d.Shifts) == 0
}

// ForDay returns the items on day's calendar date, ignoring time of day.
// Events and shifts are ordered by start time; tasks follow mode.
func ForDay(day time.Time, events []domain.Event, tasks []domain.Task, shifts []domain.Shift, mode TaskSortMode) DayItems {
	items := DayItems{
		Date:   calendar.StartOfDay(day),
		Events: []domain.Event{},
		Tasks:  []domain.Task{},
		Shifts: []domain.Shift{},
	}
	for _, e := range events {
		if calendar.SameDay(e.Date, day) {
			items.Events = append(items.Events, e)
		}
	}
	for _, t := range tasks {
		if calendar.SameDay(t.Date, day) {
			items.Tasks = append(items.Tasks, t)
		}
	}
	for _, s := range shifts {
		if calendar.SameDay(s.Date, day) {
			items.Shifts = append(items.Shifts, s)
		}
	}
	items.Events = SortEvents(items.Events)
	items.Tasks = SortTasks(items.Tasks, mode)
	items.Shifts = SortShifts(items.Shifts)
	return items
}

// MarkerSet records which kinds of item exist on a day.
type MarkerSet struct {
	Event bool
	Task  bool
	Shift bool
}

// Any reports whether the day has content of any kind.
func (m MarkerSet) Any() bool {
	return m.Event || m.Task || m.Shift
}

// DayKey identifies a calendar day independent of clock time and location.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the day key of t in t's own location.
func KeyOf(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// Markers reports which kinds of item fall on day.
func Markers(day time.Time, events []domain.Event, tasks []domain.Task, shifts []domain.Shift) MarkerSet {
	return IndexByDay(events, tasks, shifts)[KeyOf(day)]
}

// IndexByDay builds the marker set for every day with content in one pass,
// so a 42-cell grid costs one scan of each collection.
func IndexByDay(events []domain.Event, tasks []domain.Task, shifts []domain.Shift) map[DayKey]MarkerSet {
	idx := make(map[DayKey]MarkerSet)
	for _, e := range events {
		k := KeyOf(e.Date)
		m := idx[k]
		m.Event = true
		idx[k] = m
	}
	for _, t := range tasks {
		k := KeyOf(t.Date)
		m := idx[k]
		m.Task = true
		idx[k] = m
	}
	for _, s := range shifts {
		k := KeyOf(s.Date)
		m := idx[k]
		m.Shift = true
		idx[k] = m
	}
	return idx
}

// MonthItems holds a month's items sorted by date.
type MonthItems struct {
	Year   int
	Month  time.Month
	Events []domain.Event
	Tasks  []domain.Task
	Shifts []domain.Shift
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// ForMonth filters each collection to year/month and sorts by date, then
// start time where there is one.
func ForMonth(year int, month time.Month, events []domain.Event, tasks []domain.Task, shifts []domain.Shift) MonthItems {
	out := MonthItems{Year: year, Month: month}
	for _, e := range events {
		if inMonth(e.Date, year, month) {
			out.Events = append(out.Events, e)
		}
	}
	for _, t := range tasks {
		if inMonth(t.Date, year, month) {
			out.Tasks = append(out.Tasks, t)
		}
	}
	out.Shifts = ShiftsInMonth(shifts, year, month)

	sort.SliceStable(out.Events, func(i, j int) bool {
		a, b := out.Events[i], out.Events[j]
		if !calendar.SameDay(a.Date, b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.StartTime.Before(b.StartTime)
	})
	sort.SliceStable(out.Tasks, func(i, j int) bool {
		return out.Tasks[i].Date.Before(out.Tasks[j].Date)
	})
	return out
}

// ShiftsInMonth returns the shifts dated in year/month, ordered by date then start.
func ShiftsInMonth(shifts []domain.Shift, year int, month time.Month) []domain.Shift {
	var out []domain.Shift
	for _, s := range shifts {
		if inMonth(s.Date, year, month) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !calendar.SameDay(a.Date, b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.StartTime.Before(b.StartTime)
	})
	return out
}
