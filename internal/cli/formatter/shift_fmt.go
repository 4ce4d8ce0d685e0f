package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/service"
)

var moneyColumns = map[int]bool{4: true, 5: true}

// FormatShifts lists a month's shifts with a totals footer. Pay in the
// views is already clamped, so the footer is a plain sum.
func FormatShifts(views []service.ShiftView) string {
	rows := make([][]string, 0, len(views))
	var hours, income float64
	for _, v := range views {
		hours += v.Pay.WorkedHours
		income += v.Pay.Wage
		rows = append(rows, []string{
			DateLabel(v.Shift.Date),
			TimeRange(v.Shift.StartTime, v.Shift.EndTime, false),
			Tag(v.Workplace.Color, v.Workplace.Name),
			FormatMinutes(v.Shift.BreakMinutes),
			FormatHours(v.Pay.WorkedHours),
			FormatYen(v.Pay.Wage),
			TruncID(v.Shift.ID),
		})
	}
	return Table{
		Headers: []string{"DATE", "TIME", "WORKPLACE", "BREAK", "HOURS", "WAGE", "ID"},
		Rows:    rows,
		Right:   moneyColumns,
		Footer:  []string{Bold("合計"), "", "", "", Bold(FormatHours(hours)), Bold(FormatYen(income)), ""},
	}.Render()
}

// FormatPreview shows the live wage calculation for an unsaved shift.
func FormatPreview(v *service.ShiftView) string {
	lines := []string{
		fmt.Sprintf("%s  %s", Dim("勤務先"), Tag(v.Workplace.Color, v.Workplace.Name)),
		fmt.Sprintf("%s  %s", Dim("時給  "), FormatYen(v.Workplace.HourlyRate)),
		fmt.Sprintf("%s  %s", Dim("時間  "), TimeRange(v.Shift.StartTime, v.Shift.EndTime, false)),
		fmt.Sprintf("%s  %s", Dim("休憩  "), FormatMinutes(v.Shift.BreakMinutes)),
		fmt.Sprintf("%s  %s", Dim("実働  "), Bold(FormatHours(v.Pay.WorkedHours))),
		fmt.Sprintf("%s  %s", Dim("給与  "), Bold(FormatYen(v.Pay.Wage))),
	}
	if v.Pay.NetSeconds < 0 {
		lines = append(lines, StyleYellow.Render("実働時間がマイナスです。集計では0時間として扱われます。"))
	}
	return strings.Join(lines, "\n")
}

// FormatMonthlyStats renders a month's totals and the per-workplace breakdown.
func FormatMonthlyStats(st *schedule.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("総勤務時間"), Bold(FormatHours(st.TotalHours)))
	fmt.Fprintf(&b, "%s  %s\n", Dim("総収入    "), Bold(FormatYen(st.TotalIncome)))
	fmt.Fprintf(&b, "%s  %d日 / %d件\n", Dim("勤務日数  "), st.WorkedDays, st.ShiftCount)
	if len(st.ByWorkplace) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	rows := make([][]string, 0, len(st.ByWorkplace))
	for _, w := range st.ByWorkplace {
		rows = append(rows, []string{
			Tag(w.Workplace.Color, w.Workplace.Name),
			fmt.Sprintf("%d", w.ShiftCount),
			FormatHours(w.Hours),
			FormatYen(w.Income),
		})
	}
	b.WriteString(Table{
		Headers: []string{"WORKPLACE", "SHIFTS", "HOURS", "INCOME"},
		Rows:    rows,
		Right:   map[int]bool{1: true, 2: true, 3: true},
	}.Render())
	return b.String()
}

// FormatYearReport renders one row per month and a totals footer.
func FormatYearReport(r *service.YearReport) string {
	rows := make([][]string, 0, len(r.Months))
	for _, m := range r.Months {
		row := []string{
			fmt.Sprintf("%d月", int(m.Month)),
			fmt.Sprintf("%d", m.WorkedDays),
			FormatHours(m.TotalHours),
			FormatYen(m.TotalIncome),
		}
		if m.ShiftCount == 0 {
			for i := 1; i < len(row); i++ {
				row[i] = Dim(row[i])
			}
		}
		rows = append(rows, row)
	}
	return Table{
		Headers: []string{"MONTH", "DAYS", "HOURS", "INCOME"},
		Rows:    rows,
		Right:   map[int]bool{1: true, 2: true, 3: true},
		Footer: []string{
			Bold("合計"),
			Bold(fmt.Sprintf("%d", r.Total.WorkedDays)),
			Bold(FormatHours(r.Total.TotalHours)),
			Bold(FormatYen(r.Total.TotalIncome)),
		},
	}.Render()
}

// FormatWorkplaces lists workplaces with their rate and color.
func FormatWorkplaces(workplaces []domain.Workplace) string {
	rows := make([][]string, 0, len(workplaces))
	for _, w := range workplaces {
		rows = append(rows, []string{
			TruncID(w.ID),
			Tag(w.Color, w.Name),
			FormatYen(w.HourlyRate) + Dim("/h"),
			Swatch(w.Color),
			OrDash(w.Notes),
		})
	}
	return Table{
		Headers: []string{"ID", "NAME", "RATE", "COLOR", "NOTES"},
		Rows:    rows,
		Right:   map[int]bool{2: true},
	}.Render()
}
