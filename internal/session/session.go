// Package session runs one questionnaire: it serves the question bank in
// order, collects yes/no answers and produces a cached diagnosis.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/diagnosis"
)

// ErrSessionFinished is returned by Answer when no question is pending.
var ErrSessionFinished = errors.New("session finished: no pending question")

// Diagnoser classifies a set of affirmed symptoms. *diagnosis.Pipeline
// implements it.
type Diagnoser interface {
	Diagnose(symptoms []string) (diagnosis.Result, error)
}

// Advisor maps a label to advice. *catalog.Recommendations implements it.
type Advisor interface {
	Lookup(label string) []string
}

// Phase is the current phase of a session.
type Phase int

const (
	PhaseAsking   Phase = iota // A question is pending
	PhaseFinished              // All questions answered or the rest skipped
)

func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Diagnosis is what the UI shows at the end of a session.
type Diagnosis struct {
	Label           string
	Confidence      float64 // 0 to 100
	Recommendations []string
	Symptoms        []string // affirmed, in question order
}

// ConfidenceText formats Confidence with two decimals and a percent sign.
func (d Diagnosis) ConfidenceText() string {
	return fmt.Sprintf("%.2f%%", d.Confidence)
}

// Session is a finite-state questionnaire. It is not safe for concurrent use.
type Session struct {
	// ID is a random UUID identifying the session in logs.
	ID string

	questions []catalog.Question
	diagnoser Diagnoser
	advisor   Advisor

	index    int
	affirmed []string
	phase    Phase
	skipped  bool

	startTime time.Time
	endTime   time.Time

	result *Diagnosis
	err    error
}

// StartSession begins a session over questions. An empty bank starts in
// PhaseFinished and diagnoses from the class priors.
func StartSession(d Diagnoser, questions []catalog.Question, a Advisor) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		questions: append([]catalog.Question(nil), questions...),
		diagnoser: d,
		advisor:   a,
		startTime: time.Now(),
	}
	if len(s.questions) == 0 {
		s.finish()
	}
	return s
}

// NextQuestion returns the pending question, or false once the session has
// finished.
func (s *Session) NextQuestion() (catalog.Question, bool) {
	if s.phase != PhaseAsking {
		return catalog.Question{}, false
	}
	return s.questions[s.index], true
}

// Answer records the answer to the pending question and advances. A yes
// adds the question's symptom to the answer set.
func (s *Session) Answer(yes bool) error {
	if s.phase != PhaseAsking {
		return ErrSessionFinished
	}
	if yes {
		s.affirmed = append(s.affirmed, s.questions[s.index].Symptom)
	}
	s.index++
	if s.index >= len(s.questions) {
		s.finish()
	}
	return nil
}

// SkipRemaining finishes the session without asking the pending questions.
// It is a no-op once the session has finished.
func (s *Session) SkipRemaining() {
	if s.phase != PhaseAsking {
		return
	}
	s.skipped = true
	s.finish()
}

func (s *Session) finish() {
	s.phase = PhaseFinished
	s.endTime = time.Now()
}

// Diagnosis classifies the answer set. It is computed once; later calls
// return the cached result. Calling it while questions are pending skips
// them.
func (s *Session) Diagnosis() (Diagnosis, error) {
	if s.result != nil || s.err != nil {
		return s.cached()
	}
	s.SkipRemaining()

	symptoms := append([]string(nil), s.affirmed...)
	res, err := s.diagnoser.Diagnose(symptoms)
	if err != nil {
		s.err = fmt.Errorf("session %s: %w", s.ID, err)
		return Diagnosis{}, s.err
	}
	s.result = &Diagnosis{
		Label:           res.Label,
		Confidence:      res.Confidence,
		Recommendations: s.advisor.Lookup(res.Label),
		Symptoms:        symptoms,
	}
	return s.cached()
}

func (s *Session) cached() (Diagnosis, error) {
	if s.err != nil {
		return Diagnosis{}, s.err
	}
	d := *s.result
	d.Recommendations = append([]string(nil), d.Recommendations...)
	d.Symptoms = append([]string(nil), d.Symptoms...)
	return d, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Skipped reports whether the session ended through SkipRemaining.
func (s *Session) Skipped() bool {
	return s.skipped
}

// Symptoms returns the affirmed symptoms so far.
func (s *Session) Symptoms() []string {
	return append([]string(nil), s.affirmed...)
}
