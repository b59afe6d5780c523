package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/diagnosis"
	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/screen"
	"github.com/vitalvision/vitalvision/internal/ui/components"
	"github.com/vitalvision/vitalvision/internal/ui/layout"
)

// Menu labels.
const (
	LabelStart = "START CHECKUP"
	LabelExit  = "EXIT"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	modelLine string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. startCheckup builds a fresh questionnaire each
// time the user starts one.
func New(stats diagnosis.Stats, startCheckup func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: startCheckup()}
			}
		}, Disabled: startCheckup == nil},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		modelLine: modelLine(stats),
	}
}

func modelLine(st diagnosis.Stats) string {
	if st.Classes == 0 {
		return "No model loaded"
	}
	return fmt.Sprintf("%d conditions · %d symptoms in vocabulary · %d training rows",
		st.Classes, st.Vocabulary, st.TrainRows)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := isCompact(width, height)
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderModelBar(h.modelLine, cw),
		renderMenu(h.menu.View(), cw),
		renderLinks(catalog.FeedbackURL, catalog.NearbyURL, cw),
	}
	if !compact {
		sections = append(sections, renderDisclaimer(cw))
	}

	gap := "\n\n"
	if compact {
		gap = "\n"
	}
	return renderFrame(strings.Join(sections, gap), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

var titleCase = cases.Title(language.English)

// KeyHints names the highlighted menu item on the Enter hint.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: titleCase.String(strings.ToLower(h.menu.SelectedLabel()))},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
