package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/service"
	"github.com/alexanderramin/onlyone/internal/wage"
	"github.com/charmbracelet/lipgloss"
)

const (
	monthCellWidth = 5
	miniCellWidth  = 4

	markerEvent = "●"
	markerTask  = "◆"
	markerShift = "■"
)

// MonthTitle formats a month as "2025年6月".
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}

// padRight pads s with spaces to visible width w.
func padRight(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func weekdayHeader(cellWidth int) string {
	var b strings.Builder
	for i, label := range domain.WeekdayLabels {
		style := StyleHeader
		if time.Weekday(i) == time.Sunday {
			style = StyleRed.Bold(true)
		}
		b.WriteString(padRight(style.Render(label), cellWidth))
	}
	return strings.TrimRight(b.String(), " ")
}

// markerCell renders the three marker positions in a fixed order so that
// markers line up down each column.
func markerCell(m schedule.MarkerSet, muted bool) string {
	render := func(on bool, glyph string, style lipgloss.Style) string {
		if !on {
			return " "
		}
		if muted {
			return StyleDim.Render(glyph)
		}
		return style.Render(glyph)
	}
	return render(m.Event, markerEvent, StyleBlue) +
		render(m.Task, markerTask, StyleYellow) +
		render(m.Shift, markerShift, StyleGreen)
}

// FormatMonth renders the 6x7 grid with a day-number line and a marker line
// per week.
func FormatMonth(v *service.MonthView) string {
	var b strings.Builder
	b.WriteString(weekdayHeader(monthCellWidth))
	b.WriteString("\n")

	for row := 0; row < calendar.GridRows; row++ {
		var days, marks strings.Builder
		for col := 0; col < calendar.GridColumns; col++ {
			c := v.Cells[row*calendar.GridColumns+col]
			tone := c.Flags.Tone()
			num := ToneStyle(tone).Render(fmt.Sprintf("%2d", c.Date.Day()))
			days.WriteString(padRight(num, monthCellWidth))
			marks.WriteString(padRight(markerCell(c.Markers, tone == calendar.ToneMuted), monthCellWidth))
		}
		b.WriteString(strings.TrimRight(days.String(), " "))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(marks.String(), " "))
		b.WriteString("\n")
	}

	if holidays := monthHolidays(v); len(holidays) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(holidays, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Legend())
	return b.String()
}

func monthHolidays(v *service.MonthView) []string {
	var out []string
	for _, c := range v.Cells {
		if c.Holiday == "" || !c.Flags.InCurrentPeriod {
			continue
		}
		out = append(out, fmt.Sprintf("%s %s", StyleRed.Render(fmt.Sprintf("%2d日", c.Date.Day())), c.Holiday))
	}
	return out
}

// Legend explains the marker glyphs.
func Legend() string {
	return Dim("予定 ") + StyleBlue.Render(markerEvent) + "  " +
		Dim("課題 ") + StyleYellow.Render(markerTask) + "  " +
		Dim("シフト ") + StyleGreen.Render(markerShift)
}

// formatMini renders one month of the year page. Days with any content get
// a trailing dot.
func formatMini(v service.MonthView) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%d月", int(v.Month.Month()))))
	b.WriteString("\n")
	b.WriteString(weekdayHeader(miniCellWidth))
	b.WriteString("\n")
	for row := 0; row < calendar.GridRows; row++ {
		var line strings.Builder
		for col := 0; col < calendar.GridColumns; col++ {
			c := v.Cells[row*calendar.GridColumns+col]
			if !c.Flags.InCurrentPeriod {
				line.WriteString(strings.Repeat(" ", miniCellWidth))
				continue
			}
			num := ToneStyle(c.Flags.Tone()).Render(fmt.Sprintf("%2d", c.Date.Day()))
			dot := " "
			if c.Markers.Any() {
				dot = StyleYellow.Render("·")
			}
			line.WriteString(padRight(num+dot, miniCellWidth))
		}
		b.WriteString(padRight(line.String(), miniCellWidth*calendar.GridColumns))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatYear lays the twelve months out in rows of three.
func FormatYear(v *service.YearView) string {
	const perRow = 3
	var rows []string
	for i := 0; i < len(v.Months); i += perRow {
		end := i + perRow
		if end > len(v.Months) {
			end = len(v.Months)
		}
		blocks := make([]string, 0, perRow*2)
		for j := i; j < end; j++ {
			if j > i {
				blocks = append(blocks, "  ")
			}
			blocks = append(blocks, formatMini(v.Months[j]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return strings.Join(rows, "\n")
}

// FormatDay lists one day's events, shifts and tasks in that order.
func FormatDay(d *schedule.DayItems, workplaces []domain.Workplace) string {
	if d.IsEmpty() {
		return Dim("予定はありません")
	}
	var sections []string

	if len(d.Events) > 0 {
		rows := make([][]string, 0, len(d.Events))
		for _, e := range d.Events {
			rows = append(rows, []string{
				TimeRange(e.StartTime, e.EndTime, e.AllDay),
				e.Title,
				OrDash(e.Notes),
				TruncID(e.ID),
			})
		}
		sections = append(sections, Header("予定")+"\n"+RenderTable([]string{"TIME", "TITLE", "NOTES", "ID"}, rows))
	}

	if len(d.Shifts) > 0 {
		rows := make([][]string, 0, len(d.Shifts))
		for _, s := range d.Shifts {
			wp := domain.ResolveWorkplace(workplaces, s.WorkplaceID)
			pay := wage.Clamp(s.Pay(wp.HourlyRate))
			rows = append(rows, []string{
				TimeRange(s.StartTime, s.EndTime, false),
				Tag(wp.Color, wp.Name),
				FormatMinutes(s.BreakMinutes),
				FormatHours(pay.WorkedHours),
				TruncID(s.ID),
			})
		}
		sections = append(sections, Header("シフト")+"\n"+RenderTable([]string{"TIME", "WORKPLACE", "BREAK", "HOURS", "ID"}, rows))
	}

	if len(d.Tasks) > 0 {
		rows := make([][]string, 0, len(d.Tasks))
		for _, t := range d.Tasks {
			rows = append(rows, []string{
				CheckMark(t.Completed),
				PriorityPill(t.Priority),
				t.Title,
				TruncID(t.ID),
			})
		}
		sections = append(sections, Header("課題")+"\n"+RenderTable([]string{"", "PRI", "TITLE", "ID"}, rows))
	}

	return strings.Join(sections, "\n")
}
