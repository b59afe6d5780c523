package diagnosis

import (
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/vitalvision/vitalvision/internal/classifier"
	"github.com/vitalvision/vitalvision/internal/dataset"
)

// SnapshotVersion is the format version written by Snapshot. Restore accepts
// any version with the same major component.
const SnapshotVersion = "v1.0.0"

// Snapshot is the serializable state of a trained pipeline.
type Snapshot struct {
	Version         string      `json:"version"`
	Labels          []string    `json:"labels"`
	Symptoms        []string    `json:"symptoms"`
	Terms           []string    `json:"terms"`
	IDF             []float64   `json:"idf"`
	Classes         []int       `json:"classes"`
	LogPriors       []float64   `json:"log_priors"`
	FeatureLogProbs [][]float64 `json:"feature_log_probs"`
	Stats           Stats       `json:"stats"`
}

// ErrIncompatibleSnapshot is returned when a snapshot's format version
// cannot be read by this build.
type ErrIncompatibleSnapshot struct {
	Version string
	Want    string
}

func (e *ErrIncompatibleSnapshot) Error() string {
	return fmt.Sprintf("incompatible model snapshot version %q (want %s)", e.Version, semver.Major(e.Want)+".x")
}

// Snapshot exports the trained state. Held-out rows are not included.
func (p *Pipeline) Snapshot() Snapshot {
	return Snapshot{
		Version:         SnapshotVersion,
		Labels:          p.encoder.Labels(),
		Symptoms:        p.Symptoms(),
		Terms:           p.vectorizer.Terms(),
		IDF:             p.vectorizer.IDF(),
		Classes:         p.model.Classes(),
		LogPriors:       p.model.LogPriors(),
		FeatureLogProbs: p.model.FeatureLogProbs(),
		Stats:           p.stats,
	}
}

// Restore rebuilds a pipeline from a snapshot.
func Restore(snap Snapshot) (*Pipeline, error) {
	if !semver.IsValid(snap.Version) || semver.Major(snap.Version) != semver.Major(SnapshotVersion) {
		return nil, &ErrIncompatibleSnapshot{Version: snap.Version, Want: SnapshotVersion}
	}

	vec, err := classifier.NewVectorizer(snap.Terms, snap.IDF)
	if err != nil {
		return nil, fmt.Errorf("restore vectorizer: %w", err)
	}
	model, err := classifier.NewNaiveBayes(snap.Classes, snap.LogPriors, snap.FeatureLogProbs)
	if err != nil {
		return nil, fmt.Errorf("restore model: %w", err)
	}
	for _, row := range snap.FeatureLogProbs {
		if len(row) != vec.Size() {
			return nil, fmt.Errorf("restore model: %d feature weights for %d terms", len(row), vec.Size())
		}
	}

	enc := dataset.NewLabelEncoder(snap.Labels)
	if enc.Len() != len(snap.Labels) {
		return nil, fmt.Errorf("restore labels: duplicate labels in snapshot")
	}
	for i, label := range enc.Labels() {
		if snap.Labels[i] != label {
			return nil, fmt.Errorf("restore labels: %q out of code order", snap.Labels[i])
		}
	}
	for _, code := range snap.Classes {
		if _, err := enc.Decode(code); err != nil {
			return nil, fmt.Errorf("restore labels: %w", err)
		}
	}

	stats := snap.Stats
	stats.HeldOutRows = 0
	return &Pipeline{
		vectorizer: vec,
		model:      model,
		encoder:    enc,
		symptoms:   append([]string(nil), snap.Symptoms...),
		stats:      stats,
	}, nil
}
