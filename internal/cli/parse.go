package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	clockLayout = "15:04"
)

// parseDate reads YYYY-MM-DD as local midnight. The words today, tomorrow
// and yesterday are accepted relative to now; "" means today.
func parseDate(input string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	d, err := time.ParseInLocation(dateLayout, input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input)
	}
	return d, nil
}

// parseMonth reads YYYY-MM as the 1st of that month; "" means the current month.
func parseMonth(input string, now time.Time) (time.Time, error) {
	if input == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	m, err := time.ParseInLocation(monthLayout, input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM)", input)
	}
	return m, nil
}

// parseClock combines an HH:MM clock with day's date. "24:00" is the
// following midnight so late shifts can end at the day boundary.
func parseClock(day time.Time, input string) (time.Time, error) {
	if input == "24:00" {
		return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location()), nil
	}
	c, err := time.Parse(clockLayout, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", input)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}

func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// moveToDay shifts t by the number of calendar days between from and to,
// keeping its clock. A time past midnight of from stays past midnight of to.
func moveToDay(t, from, to time.Time) time.Time {
	return t.AddDate(0, 0, dayNumber(to)-dayNumber(from))
}

// parseWeekday accepts a course weekday label (月..土) or an English
// abbreviation (mon..sat).
func parseWeekday(input string) (string, error) {
	if domain.ValidCourseWeekday(input) {
		return input, nil
	}
	english := map[string]string{
		"mon": "月", "tue": "火", "wed": "水", "thu": "木", "fri": "金", "sat": "土",
	}
	key := strings.ToLower(input)
	if len(key) > 3 {
		key = key[:3]
	}
	if l, ok := english[key]; ok {
		return l, nil
	}
	return "", fmt.Errorf("invalid weekday %q (want 月-土 or mon-sat)", input)
}

func parseSemester(input string) (domain.Semester, error) {
	switch strings.ToLower(input) {
	case "first", "1", "前", "前学期":
		return domain.SemesterFirst, nil
	case "second", "2", "後", "後学期":
		return domain.SemesterSecond, nil
	}
	return "", fmt.Errorf("invalid semester %q (want first or second)", input)
}

func parseYear(input string) (int, error) {
	y, err := strconv.Atoi(input)
	if err != nil || y <= 0 {
		return 0, fmt.Errorf("invalid year %q", input)
	}
	return y, nil
}

// resolveID matches input against ids: exact match first, then a unique
// prefix, so the 8-character IDs shown in listings can be typed back.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
