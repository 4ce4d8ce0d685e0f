package calendar

import "time"

// MonthDay is a fixed calendar date independent of year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// HolidayTable maps fixed-date holidays to their names. Swap in a larger or
// regional table without touching callers.
type HolidayTable map[MonthDay]string

// DefaultHolidays is the built-in set of fixed-date national holidays.
// Equinox and Happy Monday holidays move each year and are not listed.
var DefaultHolidays = HolidayTable{
	{time.January, 1}:   "元日",
	{time.February, 11}: "建国記念の日",
	{time.April, 29}:    "昭和の日",
	{time.May, 3}:       "憲法記念日",
	{time.May, 4}:       "みどりの日",
	{time.May, 5}:       "こどもの日",
	{time.August, 11}:   "山の日",
	{time.November, 3}:  "文化の日",
	{time.November, 23}: "勤労感謝の日",
	{time.December, 23}: "天皇誕生日",
}

// Contains reports whether month/day is a holiday in the table. Out-of-range
// input is simply not found.
func (h HolidayTable) Contains(month, day int) bool {
	_, ok := h[MonthDay{Month: time.Month(month), Day: day}]
	return ok
}

// Name returns the holiday name for t, or "" when t is not a holiday.
func (h HolidayTable) Name(t time.Time) string {
	return h[MonthDay{Month: t.Month(), Day: t.Day()}]
}

// IsHolidayDate is Contains applied to a calendar date.
func (h HolidayTable) IsHolidayDate(t time.Time) bool {
	return h.Contains(int(t.Month()), t.Day())
}

// IsHoliday reports whether (month, day) is in DefaultHolidays.
func IsHoliday(month, day int) bool {
	return DefaultHolidays.Contains(month, day)
}
