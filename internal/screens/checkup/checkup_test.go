package checkup

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/diagnosis"
	"github.com/vitalvision/vitalvision/internal/logging"
	"github.com/vitalvision/vitalvision/internal/router"
	"github.com/vitalvision/vitalvision/internal/screen"
	"github.com/vitalvision/vitalvision/internal/session"
)

// stubDiagnoser records the symptom set it was asked about.
type stubDiagnoser struct {
	got []string
}

func (s *stubDiagnoser) Diagnose(symptoms []string) (diagnosis.Result, error) {
	s.got = symptoms
	return diagnosis.Result{Label: "Allergic Reaction", Confidence: 64.2}, nil
}

// stubScreen captures the diagnosis handed to the result factory.
type stubScreen struct {
	d session.Diagnosis
}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "result" }
func (s *stubScreen) Title() string                          { return "Result" }

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{Symptom: "rash", Prompt: "Do you have any rash?"},
		{Symptom: "itching", Prompt: "Is there itching or swelling?"},
		{Symptom: "fever", Prompt: "Are you experiencing fever?"},
	}
}

func newTestCheckup(qs []catalog.Question) (*CheckupScreen, *stubDiagnoser, *stubScreen) {
	d := &stubDiagnoser{}
	res := &stubScreen{}
	s := session.StartSession(d, qs, catalog.DefaultRecommendations())
	c := New(s, func(diag session.Diagnosis) screen.Screen {
		res.d = diag
		return res
	}, logging.Discard())
	return c, d, res
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func expectReplace(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
}

func TestCheckup_YesNoKeys(t *testing.T) {
	c, d, res := newTestCheckup(testQuestions())

	if _, cmd := c.Update(press('y')); cmd != nil {
		t.Error("no command expected mid-session")
	}
	c.Update(press('y'))
	_, cmd := c.Update(press('n'))
	expectReplace(t, cmd)

	if strings.Join(d.got, " ") != "rash itching" {
		t.Errorf("diagnosed %v, want [rash itching]", d.got)
	}
	if res.d.Label != "Allergic Reaction" {
		t.Errorf("result label = %q", res.d.Label)
	}
	if res.d.Recommendations[0] != "Avoid allergens." {
		t.Errorf("recommendations = %v", res.d.Recommendations)
	}
}

func TestCheckup_EnterAnswersSelection(t *testing.T) {
	c, d, _ := newTestCheckup(testQuestions())

	// Default selection is Yes.
	c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	// Switch to No for the second question.
	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	expectReplace(t, cmd)

	if strings.Join(d.got, " ") != "rash fever" {
		t.Errorf("diagnosed %v, want [rash fever]", d.got)
	}
}

func TestCheckup_Skip(t *testing.T) {
	c, d, _ := newTestCheckup(testQuestions())

	c.Update(press('y'))
	_, cmd := c.Update(press('s'))
	expectReplace(t, cmd)

	if strings.Join(d.got, " ") != "rash" {
		t.Errorf("diagnosed %v, want [rash]", d.got)
	}

	// Keys after the result is handed off are ignored.
	if _, cmd := c.Update(press('y')); cmd != nil {
		t.Error("expected no command after finishing")
	}
}

func TestCheckup_EmptyBankFinishesOnInit(t *testing.T) {
	c, _, _ := newTestCheckup(nil)
	expectReplace(t, c.Init())
}

func TestCheckup_ProgressAndView(t *testing.T) {
	c, _, _ := newTestCheckup(testQuestions())

	if got := c.Progress(); got.Answered != 0 || got.Total != 3 {
		t.Errorf("Progress = %+v, want 0 of 3 answered", got)
	}
	view := c.View(100, 30)
	if !strings.Contains(view, "Do you have any rash?") {
		t.Error("view should show the current prompt")
	}

	c.Update(press('n'))
	if got := c.Progress(); got.Answered != 1 || got.Affirmed != 0 {
		t.Errorf("Progress = %+v, want 1 answered, none affirmed", got)
	}
	if !strings.Contains(c.View(100, 30), "Is there itching or swelling?") {
		t.Error("view should advance to the next prompt")
	}
}

func TestCheckup_KeyHints(t *testing.T) {
	c, _, _ := newTestCheckup(testQuestions())
	hints := c.KeyHints()
	if len(hints) != 5 {
		t.Fatalf("KeyHints length = %d, want 5", len(hints))
	}
	if hints[0].Key != "y" || hints[1].Key != "n" || hints[2].Key != "s" {
		t.Errorf("unexpected hints %+v", hints)
	}
}

func TestCheckup_Title(t *testing.T) {
	c, _, _ := newTestCheckup(testQuestions())
	if c.Title() != "Symptom Checkup" {
		t.Errorf("Title = %q", c.Title())
	}
}

func TestCheckup_FinishLogsSessionOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := session.StartSession(&stubDiagnoser{}, testQuestions()[:1], catalog.DefaultRecommendations())
	c := New(s, func(session.Diagnosis) screen.Screen { return &stubScreen{} }, logger)

	c.Update(press('y'))

	var line string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "checkup finished") {
			line = l
		}
	}
	if line == "" {
		t.Fatalf("no finish record in %q", buf.String())
	}
	if n := strings.Count(line, "session="); n != 1 {
		t.Errorf("finish record carries session %d times: %s", n, line)
	}
}
