// Package result shows the diagnosis at the end of a checkup.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/screen"
	"github.com/vitalvision/vitalvision/internal/session"
	"github.com/vitalvision/vitalvision/internal/ui/layout"
	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

// ResultScreen displays a diagnosis and its recommendations.
type ResultScreen struct {
	diagnosis session.Diagnosis
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen.
func New(d session.Diagnosis) *ResultScreen {
	return &ResultScreen{diagnosis: d}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	d := r.diagnosis
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.TextDim).Render("Most likely condition"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(d.Label))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Render("Confidence: " + d.ConfidenceText()))
	b.WriteString("\n\n")

	symptoms := "none reported"
	if len(d.Symptoms) > 0 {
		symptoms = strings.Join(d.Symptoms, ", ")
	}
	b.WriteString(center.Foreground(theme.TextDim).Render("Symptoms: " + symptoms))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recommendations")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var recs []string
	for i, rec := range d.Recommendations {
		recs = append(recs, fmt.Sprintf("%d. %s", i+1, rec))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render(strings.Join(recs, "\n"))))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Accent).Render(
		"This is not a medical diagnosis. Consult a doctor for proper treatment."))

	return b.String()
}
