package domain

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/wage"
)

type Shift struct {
	ID           string
	Date         time.Time
	StartTime    time.Time
	EndTime      time.Time
	WorkplaceID  string
	BreakMinutes int
	Notes        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration is the net working time after the unpaid break. A shift whose end
// precedes its start yields a negative duration; callers that aggregate must
// clamp.
func (s *Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime) - time.Duration(s.BreakMinutes)*time.Minute
}

// WorkedHours is the unclamped net duration in hours.
func (s *Shift) WorkedHours() float64 {
	return s.Pay(0).WorkedHours
}

// Wage is the unclamped pay for the shift at hourlyRate.
func (s *Shift) Wage(hourlyRate float64) float64 {
	return s.Pay(hourlyRate).Wage
}

// Pay runs the wage calculation for the shift.
func (s *Shift) Pay(hourlyRate float64) wage.Result {
	return wage.Compute(s.StartTime, s.EndTime, s.BreakMinutes, hourlyRate)
}

// Validate rejects missing fields and negative breaks. Reversed intervals are
// accepted; they are clamped at aggregation time.
func (s *Shift) Validate() error {
	v := &ValidationError{}
	if s.Date.IsZero() {
		v.Add("date", "date is required")
	}
	if s.WorkplaceID == "" {
		v.Add("workplace", "workplace is required")
	}
	if s.BreakMinutes < 0 {
		v.Add("break", "break minutes must be zero or more")
	}
	return v.OrNil()
}
