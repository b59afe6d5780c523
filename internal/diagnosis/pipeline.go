// Package diagnosis trains the symptom classifier and turns symptom sets into
// a disease label with a confidence.
package diagnosis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/classifier"
	"github.com/vitalvision/vitalvision/internal/config"
	"github.com/vitalvision/vitalvision/internal/dataset"
	"github.com/vitalvision/vitalvision/internal/textutil"
)

// Options controls model fitting.
type Options struct {
	VocabularyCap   int
	HeldOutFraction float64
	RandomSeed      int64
	Alpha           float64
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

// OptionsFromConfig extracts the fitting options from cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		VocabularyCap:   cfg.VocabularyCap,
		HeldOutFraction: cfg.HeldOutFraction,
		RandomSeed:      cfg.RandomSeed,
		Alpha:           cfg.Alpha,
	}
}

// Stats summarizes a training run.
type Stats struct {
	Source      string `json:"source"`
	Rows        int    `json:"rows"`
	TrainRows   int    `json:"train_rows"`
	HeldOutRows int    `json:"held_out_rows"`
	Vocabulary  int    `json:"vocabulary"`
	Classes     int    `json:"classes"`
}

// Result is the outcome of classifying one symptom set.
type Result struct {
	Label string

	// Confidence is the winning class probability scaled to [0, 100].
	Confidence float64

	// Probabilities holds the posterior of every class the model knows.
	Probabilities map[string]float64
}

type example struct {
	feature string
	label   int
}

// Pipeline is a trained vectorizer and classifier plus the label encoding.
// It is immutable and safe for concurrent Diagnose calls.
type Pipeline struct {
	vectorizer *classifier.Vectorizer
	model      *classifier.NaiveBayes
	encoder    *dataset.LabelEncoder
	symptoms   []string
	heldOut    []example
	stats      Stats
}

// Train loads the configured dataset and fits a pipeline on it. Question
// symptoms missing from the dataset are logged as warnings.
func Train(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ds, err := dataset.Load(ctx, cfg.DatasetPath, cfg.DatasetOptions())
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		"source", ds.Source,
		"rows", ds.Len(),
		"symptoms", len(ds.Symptoms),
		"labels", ds.Encoder.Len())

	p, err := Fit(ds, OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	for _, sym := range catalog.UnknownSymptoms(cfg.Questions, ds.Symptoms) {
		logger.Warn("question symptom not in dataset; its answers are ignored", "symptom", sym)
	}
	for _, q := range cfg.Questions {
		key := textutil.SymptomKey(q.Symptom)
		if !p.vectorizer.Has(key) {
			logger.Debug("question symptom outside vocabulary", "symptom", key)
		}
	}

	logger.Info("model trained",
		"train_rows", p.stats.TrainRows,
		"held_out_rows", p.stats.HeldOutRows,
		"vocabulary", p.stats.Vocabulary,
		"classes", p.stats.Classes)
	return p, nil
}

// Fit trains a pipeline on ds. Rows are split with a seeded shuffle; the
// held-out rows are kept for Evaluate.
func Fit(ds *dataset.Dataset, opts Options) (*Pipeline, error) {
	split, err := classifier.TrainTestSplit(ds.Len(), opts.HeldOutFraction, opts.RandomSeed)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	docs := make([]string, len(split.Train))
	labels := make([]int, len(split.Train))
	for i, idx := range split.Train {
		docs[i] = ds.Features[idx]
		labels[i] = ds.Labels[idx]
	}

	vec, err := classifier.FitVectorizer(docs, opts.VocabularyCap)
	if err != nil {
		return nil, &dataset.ErrInvalidDataset{Path: ds.Source, Reason: err.Error()}
	}
	model, err := classifier.FitNaiveBayes(vec.TransformAll(docs), labels, opts.Alpha)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	heldOut := make([]example, len(split.HeldOut))
	for i, idx := range split.HeldOut {
		heldOut[i] = example{feature: ds.Features[idx], label: ds.Labels[idx]}
	}

	return &Pipeline{
		vectorizer: vec,
		model:      model,
		encoder:    ds.Encoder,
		symptoms:   append([]string(nil), ds.Symptoms...),
		heldOut:    heldOut,
		stats: Stats{
			Source:      ds.Source,
			Rows:        ds.Len(),
			TrainRows:   len(split.Train),
			HeldOutRows: len(split.HeldOut),
			Vocabulary:  vec.Size(),
			Classes:     len(model.Classes()),
		},
	}, nil
}

// Diagnose classifies a set of affirmed symptom names. Names are joined with
// single spaces and unknown terms are ignored. An empty set is answered from
// the class priors.
func (p *Pipeline) Diagnose(symptoms []string) (Result, error) {
	keys := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if k := textutil.SymptomKey(s); k != "" {
			keys = append(keys, k)
		}
	}
	return p.classify(strings.Join(keys, " "))
}

func (p *Pipeline) classify(feature string) (Result, error) {
	vec := p.vectorizer.Transform(feature)
	probs, err := p.model.PredictProba(vec)
	if err != nil {
		return Result{}, fmt.Errorf("diagnose: %w", err)
	}

	classes := p.model.Classes()
	res := Result{Probabilities: make(map[string]float64, len(classes))}
	best := -1
	for i, code := range classes {
		label, err := p.encoder.Decode(code)
		if err != nil {
			return Result{}, fmt.Errorf("diagnose: %w", err)
		}
		res.Probabilities[label] = probs[i]
		// Strict comparison keeps the lowest code on ties.
		if best < 0 || probs[i] > probs[best] {
			best = i
			res.Label = label
		}
	}
	res.Confidence = clampPercent(probs[best] * 100)
	return res, nil
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// Symptoms returns the dataset symptom columns the model was trained on.
func (p *Pipeline) Symptoms() []string {
	return append([]string(nil), p.symptoms...)
}

// Labels returns every label of the encoding in code order.
func (p *Pipeline) Labels() []string {
	return p.encoder.Labels()
}

// Stats returns the training summary.
func (p *Pipeline) Stats() Stats {
	return p.stats
}
