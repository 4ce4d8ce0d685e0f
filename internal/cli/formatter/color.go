package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorPink   = lipgloss.Color("#f5a9b8")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleToday  = lipgloss.NewStyle().Foreground(lipgloss.Color("#282828")).Background(ColorBlue).Bold(true)
)

// TagColor maps a course or workplace color tag onto the palette.
func TagColor(c domain.Color) lipgloss.Color {
	switch c {
	case domain.ColorRed:
		return ColorRed
	case domain.ColorBlue:
		return ColorBlue
	case domain.ColorGreen:
		return ColorGreen
	case domain.ColorOrange:
		return ColorOrange
	case domain.ColorPurple:
		return ColorPurple
	case domain.ColorPink:
		return ColorPink
	case domain.ColorYellow:
		return ColorYellow
	default:
		return ColorDim
	}
}

// Tag renders text in the foreground of a color tag.
func Tag(c domain.Color, text string) string {
	return lipgloss.NewStyle().Foreground(TagColor(c)).Render(text)
}

// Swatch returns a colored dot followed by the color's display name.
func Swatch(c domain.Color) string {
	return Tag(c, "●") + " " + c.DisplayName()
}

// ToneStyle returns the style for a grid cell's day number.
func ToneStyle(t calendar.Tone) lipgloss.Style {
	switch t {
	case calendar.ToneMuted:
		return StyleDim
	case calendar.ToneRed:
		return StyleRed
	case calendar.ToneToday:
		return StyleToday
	default:
		return StyleFg
	}
}

// PriorityPill returns a colored priority label such as "● 高".
func PriorityPill(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("● " + p.DisplayName())
	case domain.PriorityMedium:
		return StyleYellow.Render("● " + p.DisplayName())
	case domain.PriorityLow:
		return StyleGreen.Render("● " + p.DisplayName())
	default:
		return StyleDim.Render("● " + string(p))
	}
}

// CheckMark renders a task completion box.
func CheckMark(done bool) string {
	if done {
		return StyleDim.Render("✔")
	}
	return StyleFg.Render("○")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
