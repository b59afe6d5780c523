package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/session"
	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

// QuestionProgress draws a checkup's progress as a bar followed by an
// answered/total count. The bar shows the affirmed answers first, then the
// other answered questions, then the questions still to come.
type QuestionProgress struct {
	Progress session.Progress
	Width    int
}

// NewQuestionProgress creates a progress bar for p that fits in width cells.
func NewQuestionProgress(p session.Progress, width int) QuestionProgress {
	return QuestionProgress{Progress: p, Width: width}
}

// segments splits cells into affirmed, answered and remaining runs.
func (q QuestionProgress) segments(cells int) (affirmed, answered, remaining int) {
	p := q.Progress
	done := cells
	if p.Total > 0 {
		done = cells * min(max(p.Answered, 0), p.Total) / p.Total
	}
	if p.Answered > 0 {
		affirmed = done * min(p.Affirmed, p.Answered) / p.Answered
	}
	return affirmed, done - affirmed, cells - done
}

// View renders the bar.
func (q QuestionProgress) View() string {
	count := theme.Hint.Render(fmt.Sprintf("  %d/%d", q.Progress.Answered, q.Progress.Total))
	cells := max(q.Width-lipgloss.Width(count), 4)

	affirmed, answered, remaining := q.segments(cells)
	return theme.ProgressAffirmed.Render(strings.Repeat(" ", affirmed)) +
		theme.ProgressFilled.Render(strings.Repeat(" ", answered)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", remaining)) +
		count
}
