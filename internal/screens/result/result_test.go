package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/session"
)

func testDiagnosis() session.Diagnosis {
	return session.Diagnosis{
		Label:           "Common Cold",
		Confidence:      73.456,
		Recommendations: []string{"Stay hydrated.", "Rest well.", "Use a humidifier."},
		Symptoms:        []string{"fever", "cough"},
	}
}

func TestResultScreen_Title(t *testing.T) {
	r := New(testDiagnosis())
	if r.Title() != "Result" {
		t.Errorf("Title = %q, want %q", r.Title(), "Result")
	}
}

func TestResultScreen_Display(t *testing.T) {
	view := New(testDiagnosis()).View(100, 30)
	for _, want := range []string{"Common Cold", "73.46%", "1. Stay hydrated.", "3. Use a humidifier.", "fever, cough"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultScreen_NoSymptoms(t *testing.T) {
	d := testDiagnosis()
	d.Symptoms = nil
	view := New(d).View(100, 30)
	if !strings.Contains(view, "none reported") {
		t.Error("expected placeholder for an empty symptom set")
	}
}

func TestResultScreen_Navigation(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	} {
		_, cmd := New(testDiagnosis()).Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected a command", msg.String())
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("%s: expected PopToRootMsg", msg.String())
		}
	}

	_, cmd := New(testDiagnosis()).Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("unbound key should not produce a command")
	}
}

func TestResultScreen_KeyHints(t *testing.T) {
	if n := len(New(testDiagnosis()).KeyHints()); n != 2 {
		t.Errorf("KeyHints length = %d, want 2", n)
	}
}
