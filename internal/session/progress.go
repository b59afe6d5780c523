package session

// Progress is a point-in-time view of how far a session has come.
type Progress struct {
	Answered int
	Total    int
	Affirmed int
}

// Remaining returns the number of unanswered questions.
func (p Progress) Remaining() int {
	return p.Total - p.Answered
}

// Fraction returns Answered/Total, or 1 for an empty bank.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Answered) / float64(p.Total)
}

// Progress returns the current progress.
func (s *Session) Progress() Progress {
	return Progress{
		Answered: s.index,
		Total:    len(s.questions),
		Affirmed: len(s.affirmed),
	}
}
