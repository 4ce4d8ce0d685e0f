package timetable

import (
	"fmt"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
)

const clockLayout = "15:04"

// PeriodLabel is the start/end clock label of one period.
type PeriodLabel struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

func (p PeriodLabel) String() string {
	return p.Start + "-" + p.End
}

// Validate checks both labels are HH:MM and start precedes end.
func (p PeriodLabel) Validate() error {
	s, err := time.Parse(clockLayout, p.Start)
	if err != nil {
		return fmt.Errorf("start %q is not HH:MM", p.Start)
	}
	e, err := time.Parse(clockLayout, p.End)
	if err != nil {
		return fmt.Errorf("end %q is not HH:MM", p.End)
	}
	if !s.Before(e) {
		return fmt.Errorf("start %s must be before end %s", p.Start, p.End)
	}
	return nil
}

// DefaultPeriods are the six period labels used until the user changes them.
func DefaultPeriods() []PeriodLabel {
	return []PeriodLabel{
		{Start: "09:00", End: "10:30"},
		{Start: "10:40", End: "12:10"},
		{Start: "13:00", End: "14:30"},
		{Start: "14:40", End: "16:10"},
		{Start: "16:20", End: "17:50"},
		{Start: "18:00", End: "19:30"},
	}
}

// ValidatePeriods checks there are exactly six labels, each valid.
func ValidatePeriods(periods []PeriodLabel) error {
	if len(periods) != domain.MaxPeriod {
		return fmt.Errorf("expected %d periods, got %d", domain.MaxPeriod, len(periods))
	}
	for i, p := range periods {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("period %d: %w", i+1, err)
		}
	}
	return nil
}

// LabelFor returns the label for a 1-based period, or an empty label.
func LabelFor(periods []PeriodLabel, period int) PeriodLabel {
	if period < 1 || period > len(periods) {
		return PeriodLabel{}
	}
	return periods[period-1]
}
