// Package ics converts schedule items to and from iCalendar.
package ics

import (
	"fmt"
	"io"
	"math"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/dustin/go-humanize"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/wage"
)

const (
	productID = "-//onlyone//onlyone calendar//JA"
	uidDomain = "onlyone"

	CategoryEvent = "EVENT"
	CategoryShift = "SHIFT"
	CategoryTask  = "TASK"
)

// Source is the snapshot to export.
type Source struct {
	Events     []domain.Event
	Tasks      []domain.Task
	Shifts     []domain.Shift
	Workplaces []domain.Workplace
}

// Options controls what Build emits.
type Options struct {
	Name         string
	IncludeTasks bool
	// Stamp is written as DTSTAMP on every component.
	Stamp time.Time
}

func uid(kind, id string) string {
	return fmt.Sprintf("%s-%s@%s", kind, id, uidDomain)
}

// Build assembles a calendar. Shifts are titled with their resolved
// workplace name; tasks become all-day entries on their due date.
func Build(src Source, opts Options) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	for _, e := range src.Events {
		ve := cal.AddEvent(uid("event", e.ID))
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		if e.Notes != "" {
			ve.SetDescription(e.Notes)
		}
		if e.AllDay {
			ve.SetAllDayStartAt(e.Date)
			ve.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.StartTime)
			ve.SetEndAt(e.EndTime)
		}
		ve.SetProperty(ical.ComponentPropertyCategories, CategoryEvent)
	}

	for _, s := range src.Shifts {
		wp := domain.ResolveWorkplace(src.Workplaces, s.WorkplaceID)
		pay := wage.Clamp(s.Pay(wp.HourlyRate))

		ve := cal.AddEvent(uid("shift", s.ID))
		ve.SetDtStampTime(stamp)
		ve.SetSummary(wp.Name)
		ve.SetDescription(shiftDescription(s, pay))
		end := s.EndTime
		if end.Before(s.StartTime) {
			end = s.StartTime
		}
		ve.SetStartAt(s.StartTime)
		ve.SetEndAt(end)
		ve.SetProperty(ical.ComponentPropertyCategories, CategoryShift)
	}

	if opts.IncludeTasks {
		for _, t := range src.Tasks {
			ve := cal.AddEvent(uid("task", t.ID))
			ve.SetDtStampTime(stamp)
			summary := t.Title
			if t.Completed {
				summary = "✓ " + summary
			}
			ve.SetSummary(summary)
			if t.Notes != "" {
				ve.SetDescription(t.Notes)
			}
			ve.SetAllDayStartAt(t.Date)
			ve.SetAllDayEndAt(t.Date.AddDate(0, 0, 1))
			ve.SetProperty(ical.ComponentPropertyCategories, CategoryTask)
			ve.SetProperty(ical.ComponentPropertyPriority, fmt.Sprint(icalPriority(t.Priority)))
		}
	}
	return cal
}

func shiftDescription(s domain.Shift, pay wage.Result) string {
	desc := fmt.Sprintf("%.2fh ¥%s", pay.WorkedHours, humanize.Comma(int64(math.Round(pay.Wage))))
	if s.BreakMinutes > 0 {
		desc += fmt.Sprintf(" (break %dm)", s.BreakMinutes)
	}
	if s.Notes != "" {
		desc += "\n" + s.Notes
	}
	return desc
}

// icalPriority maps to RFC 5545 PRIORITY where 1 is highest and 9 lowest.
func icalPriority(p domain.TaskPriority) int {
	switch p {
	case domain.PriorityHigh:
		return 1
	case domain.PriorityLow:
		return 9
	default:
		return 5
	}
}

// Write serializes Build's calendar to w.
func Write(w io.Writer, src Source, opts Options) error {
	_, err := io.WriteString(w, Build(src, opts).Serialize())
	return err
}
