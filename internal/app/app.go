// Package app hosts the root Bubble Tea model for the interactive checkup.
package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/diagnosis"
	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/screen"
	"github.com/vitalvision/vitalvision/internal/screens/checkup"
	"github.com/vitalvision/vitalvision/internal/screens/home"
	"github.com/vitalvision/vitalvision/internal/screens/result"
	"github.com/vitalvision/vitalvision/internal/screens/welcome"
	"github.com/vitalvision/vitalvision/internal/session"
	"github.com/vitalvision/vitalvision/internal/ui/layout"
)

// Options holds everything the interactive front-end needs.
type Options struct {
	// Diagnoser scores answered symptom sets. Nil disables checkups.
	Diagnoser session.Diagnoser
	Stats     diagnosis.Stats
	Questions []catalog.Question
	Advisor   session.Advisor
	Logger    *slog.Logger

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel whose first screen is the splash, or home
// when opts.SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Advisor == nil {
		opts.Advisor = catalog.DefaultRecommendations()
	}

	var startCheckup func() screen.Screen
	if opts.Diagnoser != nil {
		startCheckup = func() screen.Screen {
			s := session.StartSession(opts.Diagnoser, opts.Questions, opts.Advisor)
			return checkup.New(s, func(d session.Diagnosis) screen.Screen {
				return result.New(d)
			}, opts.Logger)
		}
	}
	homeFactory := func() screen.Screen {
		return home.New(opts.Stats, startCheckup)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}
	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.ProgressProvider); ok {
			pr := p.Progress()
			status = layout.QuestionCounter(pr.Answered, pr.Total)
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	return layout.RenderFrame(header, footer, m.width, m.height, m.router.View)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
