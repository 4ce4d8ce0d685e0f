package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/service"
	"github.com/alexanderramin/onlyone/internal/timetable"
)

// TermTitle formats a term as "2025 前学期".
func TermTitle(year int, sem domain.Semester) string {
	return fmt.Sprintf("%d %s", year, sem.DisplayName())
}

// FormatTimetable renders one row per period and one column per weekday.
// Empty cells show a dim dot; occupied cells show the course title in its
// color with the room underneath in the same cell text.
func FormatTimetable(v *service.TimetableView, periods []timetable.PeriodLabel) string {
	g := v.Grid
	headers := append([]string{"限", "時間"}, g.Weekdays...)

	rows := make([][]string, 0, g.Periods)
	for p := 1; p <= g.Periods; p++ {
		row := []string{strconv.Itoa(p), Dim(timetable.LabelFor(periods, p).String())}
		for _, wd := range g.Weekdays {
			c, ok := g.At(wd, p)
			if !ok {
				row = append(row, Dim("·"))
				continue
			}
			cell := Tag(c.Color, c.Title)
			if c.Room != "" {
				cell += Dim(" @" + c.Room)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	out := RenderTable(headers, rows)
	if len(v.Hidden) > 0 {
		titles := make([]string, 0, len(v.Hidden))
		for _, c := range v.Hidden {
			titles = append(titles, fmt.Sprintf("%s (%s%d限)", c.Title, c.Weekday, c.Period))
		}
		out += "\n" + StyleYellow.Render("土曜日が非表示のため表示されていない授業: ") + strings.Join(titles, ", ") + "\n"
	}
	return out
}

// FormatCourses lists courses with their term and slot.
func FormatCourses(courses []domain.Course) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		term := TermTitle(c.Year, c.Semester)
		if c.IsLegacy() {
			term = StyleYellow.Render("未設定")
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			Tag(c.Color, c.Title),
			term,
			fmt.Sprintf("%s%d限", c.Weekday, c.Period),
			OrDash(c.Room),
			OrDash(c.Professor),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "TERM", "SLOT", "ROOM", "PROFESSOR"}, rows)
}
