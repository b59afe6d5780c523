package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/config"
	"github.com/vitalvision/vitalvision/internal/dataset"
)

const coldAllergyCSV = `fever,cough,itching,rash,disease
1,1,0,0,Cold
1,1,0,0,Cold
1,0,0,0,Cold
0,0,1,1,Allergy
0,0,1,0,Allergy
`

func fitScenario(t *testing.T) *Pipeline {
	t.Helper()
	ds, err := dataset.Read(strings.NewReader(coldAllergyCSV), ',', "scenario", dataset.Options{})
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	opts := DefaultOptions()
	opts.HeldOutFraction = 0
	p, err := Fit(ds, opts)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	return p
}

func TestDiagnose_ColdAllergyScenario(t *testing.T) {
	p := fitScenario(t)

	tests := []struct {
		symptoms []string
		want     string
	}{
		{[]string{"fever", "cough"}, "Cold"},
		{[]string{"itching", "rash"}, "Allergy"},
		{nil, "Cold"}, // majority class
	}
	for _, tt := range tests {
		res, err := p.Diagnose(tt.symptoms)
		if err != nil {
			t.Fatalf("Diagnose(%v): %v", tt.symptoms, err)
		}
		if res.Label != tt.want {
			t.Errorf("Diagnose(%v) = %q, want %q", tt.symptoms, res.Label, tt.want)
		}
		for label, prob := range res.Probabilities {
			if label != res.Label && prob*100 > res.Confidence {
				t.Errorf("Diagnose(%v): %s has %.4f above winner confidence %.2f", tt.symptoms, label, prob, res.Confidence)
			}
		}
	}
}

func TestDiagnose_ProbabilitiesSumToOne(t *testing.T) {
	p := fitScenario(t)

	inputs := [][]string{
		nil,
		{"fever"},
		{"rash", "cough"},
		{"fever", "cough", "itching", "rash"},
		{"unheard_of", "fever"},
	}
	for _, in := range inputs {
		res, err := p.Diagnose(in)
		if err != nil {
			t.Fatalf("Diagnose(%v): %v", in, err)
		}
		var sum float64
		for _, prob := range res.Probabilities {
			sum += prob
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Diagnose(%v): probabilities sum to %v", in, sum)
		}
		if res.Confidence < 0 || res.Confidence > 100 {
			t.Errorf("Diagnose(%v): confidence %v out of range", in, res.Confidence)
		}
		if _, ok := res.Probabilities[res.Label]; !ok {
			t.Errorf("Diagnose(%v): label %q not in encoding", in, res.Label)
		}
	}
}

func TestDiagnose_UnknownTermsIgnored(t *testing.T) {
	p := fitScenario(t)

	plain, err := p.Diagnose([]string{"fever"})
	if err != nil {
		t.Fatal(err)
	}
	noisy, err := p.Diagnose([]string{"fever", "purple_spots", "x"})
	if err != nil {
		t.Fatal(err)
	}
	if plain.Label != noisy.Label || math.Abs(plain.Confidence-noisy.Confidence) > 1e-9 {
		t.Errorf("unknown terms changed the result: %+v vs %+v", plain, noisy)
	}
}

func TestDiagnose_SymptomNamesAreKeyed(t *testing.T) {
	p := fitScenario(t)

	a, _ := p.Diagnose([]string{"Itching", " RASH "})
	b, _ := p.Diagnose([]string{"itching", "rash"})
	if a.Label != b.Label || a.Confidence != b.Confidence {
		t.Errorf("got %+v, want %+v", a, b)
	}
}

func TestDiagnose_Concurrent(t *testing.T) {
	p := fitScenario(t)
	want, _ := p.Diagnose([]string{"fever", "cough"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Diagnose([]string{"fever", "cough"})
			if err != nil || got.Label != want.Label || got.Confidence != want.Confidence {
				t.Errorf("concurrent Diagnose = %+v, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestFit_HeldOutAndEvaluate(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader(coldAllergyCSV), ',', "scenario", dataset.Options{})
	if err != nil {
		t.Fatal(err)
	}
	p, err := Fit(ds, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	st := p.Stats()
	if st.Rows != 5 || st.HeldOutRows != 1 || st.TrainRows != 4 {
		t.Errorf("stats = %+v, want 5 rows split 4/1", st)
	}

	ev, err := p.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Rows != 1 {
		t.Errorf("evaluated %d rows, want 1", ev.Rows)
	}
	if ev.Accuracy < 0 || ev.Accuracy > 1 {
		t.Errorf("accuracy %v out of range", ev.Accuracy)
	}

	again, err := Fit(ds, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if again.Stats() != st {
		t.Errorf("same seed gave %+v, want %+v", again.Stats(), st)
	}
}

func TestEvaluate_NoHeldOut(t *testing.T) {
	ev, err := fitScenario(t).Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Rows != 0 || ev.Accuracy != 0 {
		t.Errorf("got %+v, want empty evaluation", ev)
	}
}

func TestFit_AllRowsEmpty(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader("fever,disease\n0,Cold\n0,Flu\n"), ',', "empty", dataset.Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Fit(ds, DefaultOptions())
	var invalid *dataset.ErrInvalidDataset
	if !errors.As(err, &invalid) {
		t.Errorf("got %v, want ErrInvalidDataset", err)
	}
}

func TestTrain_FromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medical_data.csv")
	if err := os.WriteFile(path, []byte(coldAllergyCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.DatasetPath = path
	cfg.HeldOutFraction = 0
	cfg.Questions = []catalog.Question{
		{Symptom: "fever", Prompt: "Fever?"},
		{Symptom: "headache", Prompt: "Headache?"},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p, err := Train(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if got := p.Labels(); len(got) != 2 || got[0] != "Allergy" || got[1] != "Cold" {
		t.Errorf("labels = %v", got)
	}

	logs := buf.String()
	if !strings.Contains(logs, "model trained") {
		t.Errorf("missing training log in %q", logs)
	}
	if !strings.Contains(logs, "symptom=headache") || strings.Contains(logs, "symptom=fever") {
		t.Errorf("expected a warning for headache only, got %q", logs)
	}
}

func TestTrain_MissingDataset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DatasetPath = filepath.Join(t.TempDir(), "absent.csv")
	_, err := Train(context.Background(), cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	if !dataset.IsMissing(err) {
		t.Errorf("got %v, want ErrMissingDataSource", err)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	p := fitScenario(t)

	data, err := json.Marshal(p.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	for _, in := range [][]string{nil, {"fever"}, {"itching", "rash"}, {"cough", "rash"}} {
		want, _ := p.Diagnose(in)
		got, err := restored.Diagnose(in)
		if err != nil {
			t.Fatal(err)
		}
		if got.Label != want.Label || math.Abs(got.Confidence-want.Confidence) > 1e-9 {
			t.Errorf("Diagnose(%v) after restore = %+v, want %+v", in, got, want)
		}
	}
}

func TestRestore_Incompatible(t *testing.T) {
	snap := fitScenario(t).Snapshot()

	for _, v := range []string{"v2.0.0", "", "1.0.0", "garbage"} {
		snap.Version = v
		_, err := Restore(snap)
		var incompatible *ErrIncompatibleSnapshot
		if !errors.As(err, &incompatible) {
			t.Errorf("version %q: got %v, want ErrIncompatibleSnapshot", v, err)
		}
	}

	snap.Version = "v1.4.2"
	if _, err := Restore(snap); err != nil {
		t.Errorf("minor version bump rejected: %v", err)
	}
}

func TestRestore_Corrupt(t *testing.T) {
	snap := fitScenario(t).Snapshot()
	snap.Classes = append(snap.Classes, 9)
	snap.LogPriors = append(snap.LogPriors, -1)
	snap.FeatureLogProbs = append(snap.FeatureLogProbs, snap.FeatureLogProbs[0])
	if _, err := Restore(snap); err == nil {
		t.Error("expected error for class code outside the label encoding")
	}

	snap = fitScenario(t).Snapshot()
	snap.Labels = []string{"Cold", "Allergy"}
	if _, err := Restore(snap); err == nil {
		t.Error("expected error for labels out of code order")
	}
}
