// Package checkup is the questionnaire screen. It drives a session.Session
// one question at a time and hands the diagnosis to a result screen.
package checkup

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/screen"
	"github.com/vitalvision/vitalvision/internal/session"
	"github.com/vitalvision/vitalvision/internal/ui/layout"
)

// ResultFactory builds the screen shown once the session has a diagnosis.
type ResultFactory func(d session.Diagnosis) screen.Screen

// CheckupScreen asks the session's questions.
type CheckupScreen struct {
	session    *session.Session
	keys       keyMap
	selectYes  bool
	makeResult ResultFactory
	logger     *slog.Logger
	err        error
	done       bool
}

var _ screen.Screen = (*CheckupScreen)(nil)
var _ screen.KeyHintProvider = (*CheckupScreen)(nil)
var _ screen.ProgressProvider = (*CheckupScreen)(nil)

// New creates a CheckupScreen over s.
func New(s *session.Session, makeResult ResultFactory, logger *slog.Logger) *CheckupScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckupScreen{
		session:    s,
		keys:       defaultKeyMap(),
		selectYes:  true,
		makeResult: makeResult,
		logger:     logger.With("session", s.ID),
	}
}

func (c *CheckupScreen) Init() tea.Cmd {
	c.logger.Debug("checkup started", "questions", c.session.Progress().Total)
	if c.session.Phase() == session.PhaseFinished {
		return c.finish()
	}
	return nil
}

func (c *CheckupScreen) Title() string {
	return "Symptom Checkup"
}

func (c *CheckupScreen) Progress() session.Progress {
	return c.session.Progress()
}

func (c *CheckupScreen) KeyHints() []layout.KeyHint {
	if c.err != nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	hints := make([]layout.KeyHint, 0, 5)
	for _, b := range []key.Binding{c.keys.Yes, c.keys.No, c.keys.Skip, c.keys.Confirm} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (c *CheckupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || c.err != nil || c.done {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, c.keys.Yes):
		return c, c.answer(true)
	case key.Matches(kmsg, c.keys.No):
		return c, c.answer(false)
	case key.Matches(kmsg, c.keys.Skip):
		c.logger.Debug("skipping remaining questions", "answered", c.session.Progress().Answered)
		c.session.SkipRemaining()
		return c, c.finish()
	case key.Matches(kmsg, c.keys.Toggle):
		c.selectYes = !c.selectYes
		return c, nil
	case key.Matches(kmsg, c.keys.Confirm):
		return c, c.answer(c.selectYes)
	}
	return c, nil
}

func (c *CheckupScreen) answer(yes bool) tea.Cmd {
	if err := c.session.Answer(yes); err != nil {
		c.err = err
		return nil
	}
	c.selectYes = true
	if c.session.Phase() == session.PhaseFinished {
		return c.finish()
	}
	return nil
}

// finish computes the diagnosis and swaps this screen for the result.
func (c *CheckupScreen) finish() tea.Cmd {
	d, err := c.session.Diagnosis()
	c.logger.Info("checkup finished", session.BuildSummary(c.session).LogAttrs()...)
	if err != nil {
		c.logger.Error("diagnosis failed", "err", err)
		c.err = err
		return nil
	}
	c.done = true
	c.logger.Info("diagnosis", "label", d.Label, "confidence", d.ConfidenceText())

	result := c.makeResult(d)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result}
	}
}

func (c *CheckupScreen) View(width, height int) string {
	return c.render(width, height)
}
