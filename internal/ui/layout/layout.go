package layout

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// QuestionCounter labels the question currently on screen, given how many
// of total have been answered. It stays at total once the bank is done and
// is empty when there are no questions.
func QuestionCounter(answered, total int) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", min(max(answered, 0)+1, total), total)
}

var (
	chrome = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// RenderMinSizeMessage fills the window with a notice asking for a larger
// terminal.
func RenderMinSizeMessage(width, height int) string {
	notice := lipgloss.JoinVertical(lipgloss.Center,
		theme.Failure.Render("Window too small"),
		"",
		titleStyle.Render(fmt.Sprintf("Vital Vision needs %dx%d, this one is %dx%d.",
			MinWidth, MinHeight, width, height)),
		theme.Hint.Render("Enlarge the terminal to continue."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, notice)
}

// RenderHeader draws the top bar in three columns: the brand on the left,
// the screen title centred and status on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	side := inner / 4
	middle := max(inner-2*side, 0)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, brandStyle.Render("  Vital Vision")),
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, titleStyle.Render(title)),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, statusStyle.Render(status)),
	)
	return chrome.Width(width).Render(row)
}

// RenderFooter draws the key hints in order, separated by dots. Hints that
// would run past the bar are left out.
func RenderFooter(hints []KeyHint, width int) string {
	room := max(width-6, 0)
	sep := theme.Hint.Render(" · ")

	row := ""
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if row != "" {
			part = row + sep + part
		}
		if lipgloss.Width(part) > room {
			break
		}
		row = part
	}
	return chrome.Width(width).Render("  " + row)
}

// RenderFrame stacks header, body and footer into a width x height frame.
// body is called with the rows left between header and footer.
func RenderFrame(header, footer string, width, height int, body func(width, height int) string) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().
		Width(width).
		Height(rows).
		MaxHeight(rows).
		Render(body(width, rows))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
