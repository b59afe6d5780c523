// Package config holds the runtime configuration of the symptom checker.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/classifier"
	"github.com/vitalvision/vitalvision/internal/dataset"
	"github.com/vitalvision/vitalvision/internal/logging"
)

// Environment variables overriding file and default values.
const (
	EnvDataset = "VITALVISION_DATA"
	EnvModelDB = "VITALVISION_DB"
	EnvLogFile = "VITALVISION_LOG_FILE"
)

// Config is passed explicitly to the pipeline, the session and the UI.
type Config struct {
	// DatasetPath is the training table. Default: "medical_data.csv".
	DatasetPath string `yaml:"dataset"`

	// LabelColumn is the header of the disease column. Default: "disease".
	LabelColumn string `yaml:"label_column"`

	// Table is read when DatasetPath is a SQLite database. Default: "records".
	Table string `yaml:"table"`

	// Questions is the ordered question bank.
	Questions []catalog.Question `yaml:"questions"`

	// Recommendations maps a label to its advice list.
	Recommendations map[string][]string `yaml:"recommendations"`

	// Fallback is the advice for labels missing from Recommendations.
	Fallback string `yaml:"fallback"`

	// RecommendationsPath optionally names a JSON advice table that replaces
	// Recommendations and Fallback.
	RecommendationsPath string `yaml:"recommendations_file"`

	VocabularyCap   int     `yaml:"vocabulary_cap"`
	HeldOutFraction float64 `yaml:"held_out_fraction"`
	RandomSeed      int64   `yaml:"random_seed"`
	Alpha           float64 `yaml:"alpha"`

	// ModelDB is the SQLite file holding model snapshots. Empty uses the
	// default path under $XDG_DATA_HOME.
	ModelDB string `yaml:"model_db"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"log_level"`

	// LogFile receives log records while the interactive checkup runs.
	// Empty drops them so the screen stays clean.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns a Config with the built-in question bank and advice.
func DefaultConfig() Config {
	return Config{
		DatasetPath:     "medical_data.csv",
		LabelColumn:     dataset.DefaultLabelColumn,
		Table:           dataset.DefaultTable,
		Questions:       catalog.DefaultQuestions(),
		Recommendations: catalog.DefaultAdvice(),
		Fallback:        catalog.DefaultFallbackAdvice,
		VocabularyCap:   classifier.DefaultMaxFeatures,
		HeldOutFraction: 0.2,
		RandomSeed:      42,
		Alpha:           classifier.DefaultAlpha,
		LogLevel:        "INFO",
	}
}

// Parse overlays a YAML document onto the defaults. Unknown keys are errors.
// A questions or recommendations key replaces the built-in list as a whole.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Questions = nil
	cfg.Recommendations = nil

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(new(yaml.Node)); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Questions == nil {
		cfg.Questions = catalog.DefaultQuestions()
	}
	if cfg.Recommendations == nil {
		cfg.Recommendations = catalog.DefaultAdvice()
	}
	return cfg, nil
}

// Load reads the YAML file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from VITALVISION_* environment variables that are
// set and non-empty.
func (c *Config) ApplyEnv() {
	if p := os.Getenv(EnvDataset); p != "" {
		c.DatasetPath = p
	}
	if p := os.Getenv(EnvModelDB); p != "" {
		c.ModelDB = p
	}
	if l := os.Getenv(logging.EnvLevel); l != "" {
		c.LogLevel = l
	}
	if p := os.Getenv(EnvLogFile); p != "" {
		c.LogFile = p
	}
}

// Validate checks ranges and the question bank. It does not touch the
// filesystem.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatasetPath) == "" {
		return fmt.Errorf("dataset path is required")
	}
	if c.VocabularyCap <= 0 {
		return fmt.Errorf("vocabulary_cap must be positive, got %d", c.VocabularyCap)
	}
	if c.HeldOutFraction < 0 || c.HeldOutFraction >= 1 {
		return fmt.Errorf("held_out_fraction must be in [0, 1), got %g", c.HeldOutFraction)
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive, got %g", c.Alpha)
	}
	if _, err := catalog.NormalizeQuestions(c.Questions); err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// DatasetOptions returns the loader options for this configuration.
func (c Config) DatasetOptions() dataset.Options {
	return dataset.Options{LabelColumn: c.LabelColumn, Table: c.Table}
}

// RecommendationTable builds the advice table, reading RecommendationsPath
// when it is set.
func (c Config) RecommendationTable() (*catalog.Recommendations, error) {
	if c.RecommendationsPath != "" {
		return catalog.LoadRecommendations(c.RecommendationsPath)
	}
	return catalog.NewRecommendations(c.Recommendations, c.Fallback), nil
}
