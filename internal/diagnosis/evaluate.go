package diagnosis

// Evaluation is the accuracy over held-out rows.
type Evaluation struct {
	Rows     int
	Correct  int
	Accuracy float64
}

// Evaluate classifies every held-out row. With no held-out rows the accuracy
// is 0 and Rows is 0. A restored pipeline has no held-out rows.
func (p *Pipeline) Evaluate() (Evaluation, error) {
	ev := Evaluation{Rows: len(p.heldOut)}
	if ev.Rows == 0 {
		return ev, nil
	}
	for _, ex := range p.heldOut {
		res, err := p.classify(ex.feature)
		if err != nil {
			return Evaluation{}, err
		}
		want, err := p.encoder.Decode(ex.label)
		if err != nil {
			return Evaluation{}, err
		}
		if res.Label == want {
			ev.Correct++
		}
	}
	ev.Accuracy = float64(ev.Correct) / float64(ev.Rows)
	return ev, nil
}
