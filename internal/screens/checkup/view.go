package checkup

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/ui/components"
	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

func (c *CheckupScreen) render(width, height int) string {
	if c.err != nil {
		msg := theme.Failure.Render("Could not finish the checkup") + "\n\n" +
			theme.Body.Render(c.err.Error())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	q, ok := c.session.NextQuestion()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Working out your result..."))
	}

	p := c.session.Progress()
	barWidth := min(width-8, 60)

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", p.Answered+1, p.Total))
	b.WriteString(counter)
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(barWidth).
		Align(lipgloss.Center).
		Render(q.Prompt)
	b.WriteString(prompt)
	b.WriteString("\n\n")

	b.WriteString(components.ButtonRow(
		components.NewButton("Yes", c.selectYes),
		components.NewButton("No", !c.selectYes),
	))
	b.WriteString("\n\n")

	b.WriteString(components.NewQuestionProgress(p, barWidth).View())
	b.WriteString("\n\n")

	if p.Affirmed > 0 {
		b.WriteString(theme.Affirmed.Render(fmt.Sprintf("%d symptom(s) noted", p.Affirmed)))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render("press s to skip the remaining questions"))

	content := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
