package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/ui/layout"
	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

const titleFull = `╻ ╻╻╺┳╸┏━┓╻     ╻ ╻╻┏━┓╻┏━┓┏┓╻
┃┏┛┃ ┃ ┣━┫┃     ┃┏┛┃┗━┓┃┃ ┃┃┗┫
┗┛ ╹ ╹ ╹ ╹┗━╸   ┗┛ ╹┗━┛╹┗━┛╹ ╹`

const titleCompact = "V I T A L · V I S I O N"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for the frame border (2) and inner padding (4).
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderModelBar shows what the classifier was trained on.
func renderModelBar(line string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Foreground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

func renderMenu(menu string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu)
}

// renderLinks prints the feedback and nearby-care URLs. They are never opened.
func renderLinks(feedback, nearby string, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	url := lipgloss.NewStyle().Foreground(theme.Text).Underline(true)
	lines := []string{
		label.Render("Feedback:"),
		url.Render(feedback),
		label.Render("Hospitals or pharmacies near me:"),
		url.Render(nearby),
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Left).
		Render(strings.Join(lines, "\n"))
}

func renderDisclaimer(cw int) string {
	return theme.Warning.
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Not a medical diagnosis. Consult a doctor about any health concern.")
}

// renderFrame wraps content in a rounded frame, centered in the given area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func isCompact(width, height int) bool {
	// height is the content area; add back header and footer.
	return layout.IsCompactWidth(width) || layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
}
