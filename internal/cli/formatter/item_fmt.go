package formatter

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// FormatEvents lists events in the order given.
func FormatEvents(events []domain.Event) string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			TruncID(e.ID),
			DateLabel(e.Date),
			TimeRange(e.StartTime, e.EndTime, e.AllDay),
			e.Title,
			OrDash(e.Notes),
		})
	}
	return RenderTable([]string{"ID", "DATE", "TIME", "TITLE", "NOTES"}, rows)
}

// FormatTasks lists tasks with due dates relative to now. Completed tasks
// are dimmed.
func FormatTasks(tasks []domain.Task, now time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := t.Title
		if t.Completed {
			title = Dim(title)
		}
		rows = append(rows, []string{
			CheckMark(t.Completed),
			TruncID(t.ID),
			PriorityPill(t.Priority),
			title,
			DateLabel(t.Date),
			DueStyled(t.Date, now, t.Completed),
		})
	}
	return RenderTable([]string{"", "ID", "PRI", "TITLE", "DUE", ""}, rows)
}
