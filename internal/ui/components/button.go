package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

// Button is a styled, non-interactive button label. The owning screen
// decides what pressing it means.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}

// ButtonRow renders buttons side by side with a gap of two columns.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			views = append(views, strings.Repeat(" ", 2))
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
