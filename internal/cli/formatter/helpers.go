package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a
// reference time. Both times are compared by calendar day.
func RelativeDateFrom(t time.Time, now time.Time) string {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Round(a.Sub(b).Hours() / 24))

	switch {
	case days == 0:
		return "今日"
	case days == 1:
		return "明日"
	case days == -1:
		return "昨日"
	case days > 0:
		return fmt.Sprintf("%d日後", days)
	default:
		return fmt.Sprintf("%d日前", -days)
	}
}

// DueStyled returns RelativeDateFrom with urgency coloring for open tasks.
func DueStyled(due, now time.Time, done bool) string {
	text := RelativeDateFrom(due, now)
	if done {
		return StyleDim.Render(text)
	}
	a := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Round(a.Sub(b).Hours() / 24))

	switch {
	case days <= 1:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// DateLabel formats a date as "2025/06/10(火)".
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%s(%s)", t.Format("2006/01/02"), domain.WeekdayLabel(t.Weekday()))
}

// TimeRange formats an interval as "09:00-17:00", or "終日" for all-day items.
func TimeRange(start, end time.Time, allDay bool) string {
	if allDay {
		return "終日"
	}
	return start.Format("15:04") + "-" + end.Format("15:04")
}

// FormatHours renders worked hours with two decimals, e.g. "7.50h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}

// FormatYen renders an amount rounded to the nearest yen with thousands separators.
func FormatYen(amount float64) string {
	return "¥" + humanize.Comma(int64(math.Round(amount)))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// OrDash returns s, or a dimmed "--" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	return s
}
