package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// DefaultFallbackAdvice is returned for labels without specific advice.
const DefaultFallbackAdvice = "Consult a doctor for proper treatment."

// Recommendations maps a disease label to ordered advice. It is read-only
// after construction.
type Recommendations struct {
	advice   map[string][]string
	fallback string
}

// NewRecommendations copies advice and fallback into a lookup table. An empty
// fallback uses DefaultFallbackAdvice.
func NewRecommendations(advice map[string][]string, fallback string) *Recommendations {
	if fallback == "" {
		fallback = DefaultFallbackAdvice
	}
	r := &Recommendations{
		advice:   make(map[string][]string, len(advice)),
		fallback: fallback,
	}
	for label, items := range advice {
		r.advice[label] = append([]string(nil), items...)
	}
	return r
}

// DefaultAdvice returns a fresh copy of the built-in label to advice mapping.
func DefaultAdvice() map[string][]string {
	return map[string][]string{
		"Common Cold":           {"Stay hydrated.", "Rest well.", "Use a humidifier."},
		"Bronchitis":            {"Avoid smoking.", "Use a cough suppressant.", "Drink warm fluids."},
		"Gastroenteritis":       {"Stay hydrated.", "Eat bland foods.", "Avoid dairy."},
		"Respiratory Infection": {"Use a vaporizer.", "Stay warm.", "Consult a doctor if symptoms worsen."},
		"Allergic Reaction":     {"Avoid allergens.", "Use antihistamines.", "Consult a doctor if needed."},
	}
}

// DefaultRecommendations returns the built-in advice table.
func DefaultRecommendations() *Recommendations {
	return NewRecommendations(DefaultAdvice(), DefaultFallbackAdvice)
}

// Lookup returns the advice for label, or a one-element list holding the
// fallback when the label has no entry.
func (r *Recommendations) Lookup(label string) []string {
	if items, ok := r.advice[label]; ok && len(items) > 0 {
		return append([]string(nil), items...)
	}
	return []string{r.fallback}
}

// Fallback returns the generic advice string.
func (r *Recommendations) Fallback() string {
	return r.fallback
}

// Len returns the number of labels with specific advice.
func (r *Recommendations) Len() int {
	return len(r.advice)
}

// recommendationsFile is the on-disk JSON layout.
type recommendationsFile struct {
	Recommendations map[string][]string `json:"recommendations"`
	Fallback        string              `json:"fallback"`
}

var recommendationsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"recommendations": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
		},
		"fallback": map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"recommendations"},
	"additionalProperties": false,
}

var (
	compileOnce      sync.Once
	compiledSchema   *jsonschema.Schema
	compileSchemaErr error
)

func getRecommendationsSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		raw, err := json.Marshal(recommendationsSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://recommendations.json"
		if err := c.AddResource(url, def); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = c.Compile(url)
	})
	return compiledSchema, compileSchemaErr
}

// ParseRecommendations decodes and validates a JSON recommendation table.
func ParseRecommendations(data []byte) (*Recommendations, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := getRecommendationsSchema()
	if err != nil {
		return nil, fmt.Errorf("compile recommendations schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("recommendations schema validation failed: %w", err)
	}

	var file recommendationsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return NewRecommendations(file.Recommendations, file.Fallback), nil
}

// LoadRecommendations reads a JSON recommendation table from path.
func LoadRecommendations(path string) (*Recommendations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	return ParseRecommendations(data)
}
