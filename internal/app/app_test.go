package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/diagnosis"
	"github.com/vitalvision/vitalvision/internal/logging"
	"github.com/vitalvision/vitalvision/internal/screens/checkup"
	"github.com/vitalvision/vitalvision/internal/screens/home"
	"github.com/vitalvision/vitalvision/internal/screens/result"
	"github.com/vitalvision/vitalvision/internal/screens/welcome"
)

type fixedDiagnoser struct{}

func (fixedDiagnoser) Diagnose([]string) (diagnosis.Result, error) {
	return diagnosis.Result{Label: "Common Cold", Confidence: 81.5}, nil
}

func testOptions() Options {
	return Options{
		Diagnoser: fixedDiagnoser{},
		Stats:     diagnosis.Stats{Classes: 2, Vocabulary: 3, TrainRows: 4},
		Questions: []catalog.Question{
			{Symptom: "fever", Prompt: "Are you experiencing fever?"},
			{Symptom: "cough", Prompt: "Do you have a cough?"},
		},
		Logger: logging.Discard(),
	}
}

// step feeds msg to the model and then drains the resulting command chain,
// the way the Bubble Tea runtime would for navigation messages.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	for i := 0; cmd != nil && i < 10; i++ {
		next, cmd = m.Update(cmd())
		m = next.(AppModel)
	}
	return m
}

func TestStartsOnWelcome(t *testing.T) {
	m := newAppModel(testOptions())
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("welcome screen should schedule its animation")
	}
}

func TestFullCheckupFlow(t *testing.T) {
	opts := testOptions()
	opts.SkipWelcome = true
	m := newAppModel(opts)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*checkup.CheckupScreen); !ok {
		t.Fatalf("expected checkup screen, got %T", m.router.Active())
	}

	m = step(t, m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	m = step(t, m, tea.KeyPressMsg{Code: 'n', Text: "n"})
	if _, ok := m.router.Active().(*result.ResultScreen); !ok {
		t.Fatalf("expected result screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 2 {
		t.Errorf("checkup should be replaced by the result, depth = %d", m.router.Depth())
	}

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after result, got %T", m.router.Active())
	}
}

func TestEscAbandonsCheckup(t *testing.T) {
	opts := testOptions()
	opts.SkipWelcome = true
	m := newAppModel(opts)

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after esc, got %T", m.router.Active())
	}
}

func TestViewHeaderShowsStatus(t *testing.T) {
	opts := testOptions()
	opts.SkipWelcome = true
	m := newAppModel(opts)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	content := m.render()
	for _, want := range []string{"Symptom Checkup", "Q 1/2", "Are you experiencing fever?"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestNoDiagnoserDisablesCheckup(t *testing.T) {
	opts := testOptions()
	opts.Diagnoser = nil
	opts.SkipWelcome = true
	m := newAppModel(opts)

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("start should be unavailable without a model, got %T", m.router.Active())
	}
}
