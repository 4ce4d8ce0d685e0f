// Package wage holds the shift pay arithmetic.
//
// Compute never clamps: a shift whose end precedes its start produces negative
// hours and negative pay, which is what the stored record reports. Anything
// that sums or previews pay goes through Clamp first so one malformed shift
// cannot drag a total below zero.
package wage

import "time"

const secondsPerHour = 3600.0

// Result is the outcome of a wage computation.
type Result struct {
	RawSeconds  float64
	NetSeconds  float64
	WorkedHours float64
	Wage        float64
}

// Compute returns worked hours and pay for a shift interval.
func Compute(start, end time.Time, breakMinutes int, hourlyRate float64) Result {
	raw := end.Sub(start).Seconds()
	net := raw - float64(breakMinutes*60)
	hours := net / secondsPerHour
	return Result{
		RawSeconds:  raw,
		NetSeconds:  net,
		WorkedHours: hours,
		Wage:        hours * hourlyRate,
	}
}

// ClampHours floors h at zero.
func ClampHours(h float64) float64 {
	if h < 0 {
		return 0
	}
	return h
}

// Clamp returns r with worked hours and pay floored at zero. Hourly rates are
// never negative, so a non-negative hour count already has non-negative pay.
func Clamp(r Result) Result {
	if r.WorkedHours >= 0 {
		return r
	}
	r.WorkedHours = 0
	r.Wage = 0
	return r
}

// Preview is the clamped computation used by live form previews.
func Preview(start, end time.Time, breakMinutes int, hourlyRate float64) Result {
	return Clamp(Compute(start, end, breakMinutes, hourlyRate))
}
