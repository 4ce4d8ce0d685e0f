package formatter

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/service"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"github.com/alexanderramin/onlyone/internal/wage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func clock(d time.Time, h, m int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, time.Local)
}

func monthView(anchor, today time.Time, markers map[schedule.DayKey]schedule.MarkerSet) *service.MonthView {
	classifier := calendar.NewClassifier(nil)
	cells := classifier.Cells(calendar.MonthGrid(anchor), anchor, today)
	v := &service.MonthView{Month: calendar.StartOfMonth(anchor), Cells: make([]service.DayCell, len(cells))}
	for i, c := range cells {
		v.Cells[i] = service.DayCell{
			Cell:    c,
			Markers: markers[schedule.KeyOf(c.Date)],
			Holiday: classifier.Holidays.Name(c.Date),
		}
	}
	return v
}

func TestFormatMonth_GridAndMarkers(t *testing.T) {
	june10 := day(2025, time.June, 10)
	v := monthView(june10, june10, map[schedule.DayKey]schedule.MarkerSet{
		schedule.KeyOf(june10): {Event: true, Task: true},
	})

	lines := strings.Split(stripANSI(FormatMonth(v)), "\n")
	require.Greater(t, len(lines), 13)

	assert.True(t, strings.HasPrefix(lines[0], "日"))
	// June 2025 starts on a Sunday, so the first row is the 1st to the 7th.
	assert.Equal(t, " 1    2    3    4    5    6    7", lines[1])
	assert.Equal(t, " 8    9   10   11   12   13   14", lines[3])
	assert.Equal(t, strings.Repeat(" ", 10)+"●◆", lines[4])
	// Last row pads into July.
	assert.Equal(t, " 6    7    8    9   10   11   12", lines[11])
	assert.Contains(t, lines[len(lines)-1], "シフト")
}

func TestFormatMonth_ListsHolidaysOfTheMonthOnly(t *testing.T) {
	may := day(2025, time.May, 1)
	out := stripANSI(FormatMonth(monthView(may, day(2025, time.June, 10), nil)))

	assert.Contains(t, out, " 3日 憲法記念日")
	assert.Contains(t, out, " 5日 こどもの日")
	// April 29 shows in the leading cells but belongs to April.
	assert.NotContains(t, out, "昭和の日")
}

func TestFormatYear_TwelveMonths(t *testing.T) {
	today := day(2025, time.June, 10)
	yv := &service.YearView{Year: 2025}
	for m := time.January; m <= time.December; m++ {
		yv.Months = append(yv.Months, *monthView(day(2025, m, 1), today, nil))
	}

	out := stripANSI(FormatYear(yv))
	for m := 1; m <= 12; m++ {
		assert.Contains(t, out, fmt.Sprintf("%d月", m))
	}
	assert.Contains(t, out, "31")
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "2025年6月", MonthTitle(day(2025, time.June, 10)))
}

func TestFormatDay(t *testing.T) {
	d := day(2025, time.June, 10)
	wp := domain.Workplace{ID: "wp-1", Name: "カフェ", Color: domain.ColorGreen, HourlyRate: 1000}
	items := &schedule.DayItems{
		Date:   d,
		Events: []domain.Event{{ID: "ev-1", Title: "歯医者", Date: d, StartTime: clock(d, 10, 0), EndTime: clock(d, 11, 0)}},
		Tasks:  []domain.Task{{ID: "tk-1", Title: "レポート", Date: d, Priority: domain.PriorityHigh}},
		Shifts: []domain.Shift{
			{ID: "sh-1", Date: d, WorkplaceID: "wp-1", StartTime: clock(d, 13, 0), EndTime: clock(d, 18, 0), BreakMinutes: 30},
			{ID: "sh-2", Date: d, WorkplaceID: "gone", StartTime: clock(d, 20, 0), EndTime: clock(d, 19, 0)},
		},
	}

	out := stripANSI(FormatDay(items, []domain.Workplace{wp}))
	assert.Contains(t, out, "10:00-11:00")
	assert.Contains(t, out, "歯医者")
	assert.Contains(t, out, "カフェ")
	assert.Contains(t, out, "4.50h")
	assert.Contains(t, out, domain.UnknownWorkplaceName)
	assert.Contains(t, out, "0.00h")
	assert.Contains(t, out, "レポート")
	assert.Less(t, strings.Index(out, "予定"), strings.Index(out, "シフト"))
	assert.Less(t, strings.Index(out, "シフト"), strings.Index(out, "課題"))
}

func TestFormatDay_Empty(t *testing.T) {
	out := stripANSI(FormatDay(&schedule.DayItems{Date: day(2025, time.June, 11)}, nil))
	assert.Equal(t, "予定はありません", out)
}

func TestFormatTimetable(t *testing.T) {
	courses := []domain.Course{
		{ID: "c1", Title: "線形代数", Room: "A101", Weekday: "月", Period: 1, Year: 2025, Semester: domain.SemesterFirst, Color: domain.ColorBlue},
		{ID: "c2", Title: "体育", Weekday: "土", Period: 2, Year: 2025, Semester: domain.SemesterFirst, Color: domain.ColorGreen},
	}
	grid, hidden := timetable.BuildGrid(courses, 2025, domain.SemesterFirst, timetable.Weekdays(false))
	out := stripANSI(FormatTimetable(&service.TimetableView{Grid: grid, Hidden: hidden}, timetable.DefaultPeriods()))

	assert.Contains(t, out, "線形代数 @A101")
	assert.Contains(t, out, "09:00-10:30")
	assert.Contains(t, out, "18:00-19:30")
	assert.Contains(t, out, "体育 (土2限)")
	assert.NotContains(t, strings.Split(out, "\n")[0], "土")
}

func TestFormatCourses_LegacyTermFlagged(t *testing.T) {
	out := stripANSI(FormatCourses([]domain.Course{
		{ID: "c1", Title: "英語", Weekday: "火", Period: 3, Year: 2025, Semester: domain.SemesterSecond},
		{ID: "c2", Title: "旧授業", Weekday: "水", Period: 1, Year: domain.LegacyYear, Semester: domain.SemesterFirst},
	}))

	assert.Contains(t, out, "2025 後学期")
	assert.Contains(t, out, "火3限")
	assert.Contains(t, out, "未設定")
}

func TestFormatShifts_Totals(t *testing.T) {
	d := day(2025, time.June, 10)
	wp := domain.Workplace{ID: "wp-1", Name: "カフェ", Color: domain.ColorGreen, HourlyRate: 1000}
	views := []service.ShiftView{
		{
			Shift:     domain.Shift{ID: "s1", Date: d, StartTime: clock(d, 9, 0), EndTime: clock(d, 17, 0), BreakMinutes: 60},
			Workplace: wp,
			Pay:       wage.Preview(clock(d, 9, 0), clock(d, 17, 0), 60, 1000),
		},
		{
			Shift:     domain.Shift{ID: "s2", Date: d.AddDate(0, 0, 1), StartTime: clock(d, 18, 0), EndTime: clock(d, 20, 0)},
			Workplace: wp,
			Pay:       wage.Preview(clock(d, 18, 0), clock(d, 20, 0), 0, 1000),
		},
	}

	out := stripANSI(FormatShifts(views))
	assert.Contains(t, out, "7.00h")
	assert.Contains(t, out, "¥7,000")
	assert.Contains(t, out, "9.00h")
	assert.Contains(t, out, "¥9,000")
	assert.Contains(t, out, "合計")
}

func TestFormatPreview_WarnsOnReversedShift(t *testing.T) {
	d := day(2025, time.June, 10)
	v := &service.ShiftView{
		Shift:     domain.Shift{StartTime: clock(d, 17, 0), EndTime: clock(d, 9, 0)},
		Workplace: domain.Workplace{Name: "カフェ", HourlyRate: 1000},
		Pay:       wage.Preview(clock(d, 17, 0), clock(d, 9, 0), 0, 1000),
	}

	out := stripANSI(FormatPreview(v))
	assert.Contains(t, out, "0.00h")
	assert.Contains(t, out, "¥0")
	assert.Contains(t, out, "マイナス")
}

func TestFormatMonthlyStats(t *testing.T) {
	st := &schedule.Stats{
		Year: 2025, Month: time.June,
		TotalHours: 12.5, TotalIncome: 13250, WorkedDays: 2, ShiftCount: 3,
		ByWorkplace: []schedule.WorkplaceStats{
			{Workplace: domain.Workplace{Name: "カフェ"}, Hours: 12.5, Income: 13250, ShiftCount: 3},
		},
	}

	out := stripANSI(FormatMonthlyStats(st))
	assert.Contains(t, out, "12.50h")
	assert.Contains(t, out, "¥13,250")
	assert.Contains(t, out, "2日 / 3件")
	assert.Contains(t, out, "カフェ")
}

func TestFormatYearReport(t *testing.T) {
	r := &service.YearReport{Year: 2025, Total: schedule.Stats{TotalHours: 7, TotalIncome: 7000, WorkedDays: 1}}
	for m := time.January; m <= time.December; m++ {
		r.Months = append(r.Months, schedule.Stats{Year: 2025, Month: m})
	}
	r.Months[5] = schedule.Stats{Year: 2025, Month: time.June, TotalHours: 7, TotalIncome: 7000, WorkedDays: 1, ShiftCount: 1}

	out := stripANSI(FormatYearReport(r))
	assert.Contains(t, out, "12月")
	assert.Contains(t, out, "¥7,000")
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 16)
}

func TestFormatTasks_DimsCompleted(t *testing.T) {
	now := day(2025, time.June, 10)
	out := stripANSI(FormatTasks([]domain.Task{
		{ID: "t1", Title: "open", Date: now, Priority: domain.PriorityLow},
		{ID: "t2", Title: "done", Date: now.AddDate(0, 0, -2), Priority: domain.PriorityHigh, Completed: true},
	}, now))

	assert.Contains(t, out, "今日")
	assert.Contains(t, out, "2日前")
	assert.Contains(t, out, "✔")
}

func TestFormatEvents(t *testing.T) {
	d := day(2025, time.June, 10)
	out := stripANSI(FormatEvents([]domain.Event{
		{ID: "e1", Title: "誕生日", Date: d, AllDay: true},
	}))
	assert.Contains(t, out, "2025/06/10(火)")
	assert.Contains(t, out, "終日")
}
