package session

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/dataset"
	"github.com/vitalvision/vitalvision/internal/diagnosis"
)

type fakeDiagnoser struct {
	calls [][]string
	err   error
}

func (f *fakeDiagnoser) Diagnose(symptoms []string) (diagnosis.Result, error) {
	f.calls = append(f.calls, symptoms)
	if f.err != nil {
		return diagnosis.Result{}, f.err
	}
	return diagnosis.Result{Label: "Common Cold", Confidence: 87.5}, nil
}

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{Symptom: "fever", Prompt: "Fever?"},
		{Symptom: "cough", Prompt: "Cough?"},
		{Symptom: "itching", Prompt: "Itching?"},
		{Symptom: "rash", Prompt: "Rash?"},
	}
}

func TestSession_AsksInOrder(t *testing.T) {
	s := StartSession(&fakeDiagnoser{}, testQuestions(), catalog.DefaultRecommendations())

	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("session ID %q is not a UUID: %v", s.ID, err)
	}

	for i, want := range testQuestions() {
		q, ok := s.NextQuestion()
		if !ok {
			t.Fatalf("question %d: session ended early", i)
		}
		if q != want {
			t.Errorf("question %d = %+v, want %+v", i, q, want)
		}
		if err := s.Answer(i%2 == 0); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if _, ok := s.NextQuestion(); ok {
		t.Error("expected no question after the last answer")
	}
	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", s.Phase())
	}
	if got := s.Symptoms(); !reflect.DeepEqual(got, []string{"fever", "itching"}) {
		t.Errorf("symptoms = %v", got)
	}
}

func TestSession_AnswerAfterFinish(t *testing.T) {
	s := StartSession(&fakeDiagnoser{}, testQuestions()[:1], catalog.DefaultRecommendations())
	if err := s.Answer(true); err != nil {
		t.Fatal(err)
	}
	if err := s.Answer(true); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("got %v, want ErrSessionFinished", err)
	}

	s = StartSession(&fakeDiagnoser{}, testQuestions(), catalog.DefaultRecommendations())
	s.SkipRemaining()
	if err := s.Answer(false); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("after skip: got %v, want ErrSessionFinished", err)
	}
	if !s.Skipped() {
		t.Error("expected Skipped after SkipRemaining")
	}
}

func TestSession_DiagnosisCached(t *testing.T) {
	fd := &fakeDiagnoser{}
	s := StartSession(fd, testQuestions(), catalog.DefaultRecommendations())
	_ = s.Answer(true)
	_ = s.Answer(true)
	s.SkipRemaining()

	first, err := s.Diagnosis()
	if err != nil {
		t.Fatal(err)
	}
	first.Recommendations[0] = "mutated"
	second, err := s.Diagnosis()
	if err != nil {
		t.Fatal(err)
	}

	if len(fd.calls) != 1 {
		t.Errorf("diagnoser called %d times, want 1", len(fd.calls))
	}
	if !reflect.DeepEqual(fd.calls[0], []string{"fever", "cough"}) {
		t.Errorf("diagnosed %v", fd.calls[0])
	}
	if second.Label != "Common Cold" || second.ConfidenceText() != "87.50%" {
		t.Errorf("diagnosis = %+v", second)
	}
	if second.Recommendations[0] != "Stay hydrated." {
		t.Errorf("cached recommendations were mutated: %v", second.Recommendations)
	}
}

func TestSession_DiagnosisWhileAskingSkips(t *testing.T) {
	s := StartSession(&fakeDiagnoser{}, testQuestions(), catalog.DefaultRecommendations())
	_ = s.Answer(true)

	if _, err := s.Diagnosis(); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseFinished || !s.Skipped() {
		t.Errorf("phase = %v skipped = %v, want finished and skipped", s.Phase(), s.Skipped())
	}
}

func TestSession_UnknownLabelFallback(t *testing.T) {
	fd := &fakeDiagnoser{}
	s := StartSession(fd, testQuestions(), catalog.NewRecommendations(nil, ""))
	d, err := s.Diagnosis()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d.Recommendations, []string{catalog.DefaultFallbackAdvice}) {
		t.Errorf("recommendations = %v", d.Recommendations)
	}
}

func TestSession_DiagnoserErrorCached(t *testing.T) {
	boom := errors.New("boom")
	fd := &fakeDiagnoser{err: boom}
	s := StartSession(fd, testQuestions(), catalog.DefaultRecommendations())

	for i := 0; i < 2; i++ {
		if _, err := s.Diagnosis(); !errors.Is(err, boom) {
			t.Errorf("call %d: got %v, want wrapped boom", i, err)
		}
	}
	if len(fd.calls) != 1 {
		t.Errorf("diagnoser called %d times, want 1", len(fd.calls))
	}
}

func TestSession_EmptyBank(t *testing.T) {
	s := StartSession(&fakeDiagnoser{}, nil, catalog.DefaultRecommendations())
	if _, ok := s.NextQuestion(); ok {
		t.Error("expected no question for an empty bank")
	}
	if s.Progress().Fraction() != 1 {
		t.Errorf("fraction = %v, want 1", s.Progress().Fraction())
	}
	d, err := s.Diagnosis()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Symptoms) != 0 {
		t.Errorf("symptoms = %v, want none", d.Symptoms)
	}
}

func TestSession_Progress(t *testing.T) {
	s := StartSession(&fakeDiagnoser{}, testQuestions(), catalog.DefaultRecommendations())
	_ = s.Answer(true)
	_ = s.Answer(false)
	_ = s.Answer(true)

	p := s.Progress()
	if p.Answered != 3 || p.Total != 4 || p.Affirmed != 2 || p.Remaining() != 1 {
		t.Errorf("progress = %+v", p)
	}
	if p.Fraction() != 0.75 {
		t.Errorf("fraction = %v, want 0.75", p.Fraction())
	}

	sum := BuildSummary(s)
	if sum.ID != s.ID || sum.Answered != 3 || sum.Skipped {
		t.Errorf("summary = %+v", sum)
	}
	attrs := sum.LogAttrs()
	if len(attrs)%2 != 0 {
		t.Error("log attrs must be key/value pairs")
	}
	for i := 0; i < len(attrs); i += 2 {
		if attrs[i] == "session" {
			t.Error("log attrs repeat the session ID")
		}
	}
}

func TestSession_SkipMatchesDirectDiagnosis(t *testing.T) {
	csv := "fever,cough,itching,rash,disease\n" +
		"1,1,0,0,Cold\n1,0,0,0,Cold\n1,1,0,0,Cold\n0,0,1,1,Allergy\n0,0,1,0,Allergy\n"
	ds, err := dataset.Read(strings.NewReader(csv), ',', "test", dataset.Options{})
	if err != nil {
		t.Fatal(err)
	}
	opts := diagnosis.DefaultOptions()
	opts.HeldOutFraction = 0
	p, err := diagnosis.Fit(ds, opts)
	if err != nil {
		t.Fatal(err)
	}

	answers := [][]bool{
		{true},
		{true, true},
		{false, false, true},
		{false, true, true},
	}
	for _, prefix := range answers {
		s := StartSession(p, testQuestions(), catalog.DefaultRecommendations())
		var affirmed []string
		for i, yes := range prefix {
			if yes {
				affirmed = append(affirmed, testQuestions()[i].Symptom)
			}
			if err := s.Answer(yes); err != nil {
				t.Fatal(err)
			}
		}
		s.SkipRemaining()

		got, err := s.Diagnosis()
		if err != nil {
			t.Fatal(err)
		}
		want, err := p.Diagnose(affirmed)
		if err != nil {
			t.Fatal(err)
		}
		if got.Label != want.Label || got.Confidence != want.Confidence {
			t.Errorf("prefix %v: skip path = %s %.4f, direct = %s %.4f",
				prefix, got.Label, got.Confidence, want.Label, want.Confidence)
		}
	}
}
