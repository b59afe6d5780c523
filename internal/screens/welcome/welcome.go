package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/screen"
	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// Tagline is shown under the banner once the pulse has settled.
const Tagline = "Answer a few yes/no questions about how you feel."

const disclaimer = "Not a medical device. Always consult a healthcare professional."

// pulseFrames scroll a heartbeat trace across the splash.
var pulseFrames = []string{
	"──────╮╭──────────────",
	"────────╮╭────────────",
	"──────────╮╭──────────",
	"────────────╮╭────────",
	"──────────────╮╭──────",
}

const pulsePeak = "╰╯"

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.transitioned {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) renderPulse() string {
	frame := pulseFrames[w.tickCount%len(pulseFrames)]
	i := strings.Index(frame, "╮╭")
	peak := strings.Repeat(" ", len([]rune(frame[:i]))) + pulsePeak

	trace := lipgloss.NewStyle().Foreground(theme.Secondary)
	heart := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	return trace.Render(frame) + "  " + heart.Render("♥") + "\n" + trace.Render(peak)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	// Phase 1: pulse only once the first beat completes.
	if w.elapsed >= phase1End {
		sections = append(sections, w.renderPulse())
	}

	// Phase 2: banner, tagline and disclaimer.
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline, theme.Warning.Render(disclaimer))

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
