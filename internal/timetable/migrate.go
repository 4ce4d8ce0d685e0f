package timetable

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// MigrateLegacy assigns the current year and the first semester to every
// course still carrying the legacy year. It returns a new slice and the
// number of courses changed; the input is not modified. Running it again on
// its own output changes nothing.
func MigrateLegacy(courses []domain.Course, now time.Time) ([]domain.Course, int) {
	out := make([]domain.Course, len(courses))
	changed := 0
	for i, c := range courses {
		if c.IsLegacy() {
			c.Year = now.Year()
			c.Semester = domain.SemesterFirst
			c.UpdatedAt = now
			changed++
		}
		out[i] = c
	}
	return out, changed
}
