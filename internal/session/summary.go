package session

import "time"

// Summary holds the data logged when a session ends.
type Summary struct {
	ID       string
	Duration time.Duration
	Answered int
	Total    int
	Affirmed int
	Skipped  bool
}

// BuildSummary creates a Summary from the session state. Duration runs to
// now while the session is still asking.
func BuildSummary(s *Session) Summary {
	end := s.endTime
	if s.phase == PhaseAsking || end.IsZero() {
		end = time.Now()
	}
	p := s.Progress()
	return Summary{
		ID:       s.ID,
		Duration: end.Sub(s.startTime),
		Answered: p.Answered,
		Total:    p.Total,
		Affirmed: p.Affirmed,
		Skipped:  s.skipped,
	}
}

// LogAttrs returns the summary as slog key/value pairs. The session ID is
// left to the logger, which carries it for the whole checkup.
func (sum Summary) LogAttrs() []any {
	return []any{
		"answered", sum.Answered,
		"total", sum.Total,
		"affirmed", sum.Affirmed,
		"skipped", sum.Skipped,
		"duration", sum.Duration.Round(time.Millisecond),
	}
}
