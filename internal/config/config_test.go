package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvision/vitalvision/internal/catalog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "medical_data.csv", cfg.DatasetPath)
	assert.Equal(t, "disease", cfg.LabelColumn)
	assert.Equal(t, 5000, cfg.VocabularyCap)
	assert.Equal(t, 0.2, cfg.HeldOutFraction)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 1.0, cfg.Alpha)
	assert.Len(t, cfg.Questions, 15)
	assert.Len(t, cfg.Recommendations, 5)
	require.NoError(t, cfg.Validate())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
dataset: data/records.db
held_out_fraction: 0
random_seed: 7
questions:
  - symptom: fever
    prompt: Hot?
`))
	require.NoError(t, err)
	assert.Equal(t, "data/records.db", cfg.DatasetPath)
	assert.Equal(t, 0.0, cfg.HeldOutFraction)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, []catalog.Question{{Symptom: "fever", Prompt: "Hot?"}}, cfg.Questions)

	// Untouched keys keep their defaults.
	assert.Equal(t, 5000, cfg.VocabularyCap)
	assert.Equal(t, catalog.DefaultAdvice(), cfg.Recommendations)
	require.NoError(t, cfg.Validate())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse([]byte("datset: typo.csv\n"))
	assert.Error(t, err, "unknown key")

	_, err = Parse([]byte("dataset: a.csv\n---\ndataset: b.csv\n"))
	assert.ErrorContains(t, err, "multiple YAML documents")

	_, err = Parse([]byte("dataset: a.csv\n---\nnot_a_key: 1\n"))
	assert.ErrorContains(t, err, "multiple YAML documents")

	_, err = Parse([]byte("vocabulary_cap: lots\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "vitalvision.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alpha: 0.5\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Alpha)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvDataset, "/tmp/symptoms.tsv")
	t.Setenv(EnvModelDB, "/tmp/models.db")
	t.Setenv("VITALVISION_LOG_LEVEL", "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/vitalvision.log")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/vitalvision.log", cfg.LogFile)
	assert.Equal(t, "/tmp/symptoms.tsv", cfg.DatasetPath)
	assert.Equal(t, "/tmp/models.db", cfg.ModelDB)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty dataset", func(c *Config) { c.DatasetPath = " " }, "dataset path"},
		{"zero vocabulary", func(c *Config) { c.VocabularyCap = 0 }, "vocabulary_cap"},
		{"negative held out", func(c *Config) { c.HeldOutFraction = -0.1 }, "held_out_fraction"},
		{"held out of one", func(c *Config) { c.HeldOutFraction = 1 }, "held_out_fraction"},
		{"zero alpha", func(c *Config) { c.Alpha = 0 }, "alpha"},
		{"no questions", func(c *Config) { c.Questions = nil }, "questions"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestRecommendationTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Recommendations = map[string][]string{"Flu": {"Rest."}}
	cfg.Fallback = "Call someone."
	table, err := cfg.RecommendationTable()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rest."}, table.Lookup("Flu"))
	assert.Equal(t, []string{"Call someone."}, table.Lookup("Cold"))

	path := filepath.Join(t.TempDir(), "recs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"recommendations": {"Cold": ["Tea."]}}`), 0o644))
	cfg.RecommendationsPath = path
	table, err = cfg.RecommendationTable()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tea."}, table.Lookup("Cold"))
	assert.Equal(t, []string{catalog.DefaultFallbackAdvice}, table.Lookup("Flu"))
}
