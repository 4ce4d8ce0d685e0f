package domain

import "time"

type Semester string

const (
	SemesterFirst  Semester = "first"
	SemesterSecond Semester = "second"
)

// DisplayName returns the label shown in timetable headers.
func (s Semester) DisplayName() string {
	switch s {
	case SemesterFirst:
		return "前学期"
	case SemesterSecond:
		return "後学期"
	default:
		return string(s)
	}
}

// ValidSemesters is the canonical set of accepted semester strings.
var ValidSemesters = map[string]bool{
	"first": true, "second": true,
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Rank orders priorities so that higher values are more urgent.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// DisplayName returns the short label used in task listings.
func (p TaskPriority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "高"
	case PriorityMedium:
		return "中"
	case PriorityLow:
		return "低"
	default:
		return string(p)
	}
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// Color is the tag shared by courses and workplaces.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorYellow Color = "yellow"
	ColorGray   Color = "gray"
)

// ValidColors is the canonical set of accepted color strings.
var ValidColors = map[string]bool{
	"red": true, "blue": true, "green": true, "orange": true,
	"purple": true, "pink": true, "yellow": true, "gray": true,
}

// DisplayName returns the Japanese color name used by the settings screens.
func (c Color) DisplayName() string {
	switch c {
	case ColorRed:
		return "赤"
	case ColorBlue:
		return "青"
	case ColorGreen:
		return "緑"
	case ColorOrange:
		return "オレンジ"
	case ColorPurple:
		return "紫"
	case ColorPink:
		return "ピンク"
	case ColorYellow:
		return "黄"
	case ColorGray:
		return "グレー"
	default:
		return string(c)
	}
}

// WeekdayLabels holds the single-character weekday labels indexed by time.Weekday.
var WeekdayLabels = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// CourseWeekdays lists the weekday labels a course may be scheduled on, in column order.
var CourseWeekdays = []string{"月", "火", "水", "木", "金", "土"}

// WeekdayLabel returns the label for wd.
func WeekdayLabel(wd time.Weekday) string {
	return WeekdayLabels[wd%7]
}

// ParseWeekdayLabel maps a weekday label back to a time.Weekday.
func ParseWeekdayLabel(label string) (time.Weekday, bool) {
	for i, l := range WeekdayLabels {
		if l == label {
			return time.Weekday(i), true
		}
	}
	return time.Sunday, false
}

// ValidCourseWeekday reports whether label can hold a course.
func ValidCourseWeekday(label string) bool {
	for _, l := range CourseWeekdays {
		if l == label {
			return true
		}
	}
	return false
}

const (
	MinPeriod = 1
	MaxPeriod = 6
)
