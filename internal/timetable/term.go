package timetable

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// TermFor returns the academic term containing t. The first semester runs
// April through September; the second runs October through March and
// belongs to the academic year that started the previous April.
func TermFor(t time.Time) (int, domain.Semester) {
	switch m := t.Month(); {
	case m >= time.April && m <= time.September:
		return t.Year(), domain.SemesterFirst
	case m >= time.October:
		return t.Year(), domain.SemesterSecond
	default:
		return t.Year() - 1, domain.SemesterSecond
	}
}
