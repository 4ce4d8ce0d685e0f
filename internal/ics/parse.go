package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// ErrEmptyCalendar is returned when the input holds no VEVENT.
var ErrEmptyCalendar = errors.New("calendar has no events")

// ParseEvents reads VEVENTs as events. DATE-valued starts become all-day
// events; timed ones are moved into loc. Components without a start are
// skipped and counted in skipped.
func ParseEvents(r io.Reader, loc *time.Location) (events []domain.Event, skipped int, err error) {
	if loc == nil {
		loc = time.Local
	}
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing calendar: %w", err)
	}
	vevents := cal.Events()
	if len(vevents) == 0 {
		return nil, 0, ErrEmptyCalendar
	}

	for _, ve := range vevents {
		e, ok := parseVEvent(ve, loc)
		if !ok {
			skipped++
			continue
		}
		events = append(events, e)
	}
	return events, skipped, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (domain.Event, bool) {
	var e domain.Event

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return e, false
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = p.Value
	}
	if e.Title == "" {
		e.Title = "(no title)"
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Notes = p.Value
	}

	if isDateValue(dtStart) {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return e, false
		}
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		e.AllDay = true
		e.Date = day
		e.StartTime = day
		e.EndTime = day
		return e, true
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return e, false
	}
	start = start.In(loc)
	end, err := ve.GetEndAt()
	if err != nil || end.Before(start) {
		end = start
	}
	e.StartTime = start
	e.EndTime = end.In(loc)
	e.Date = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	return e, true
}

// isDateValue detects VALUE=DATE or a bare YYYYMMDD value.
func isDateValue(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
