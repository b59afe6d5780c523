package dataset

import (
	"fmt"
	"sort"
)

// LabelEncoder maps label strings to dense integer codes and back. Codes are
// assigned in lexicographic label order. It is immutable once built.
type LabelEncoder struct {
	labels []string
	codes  map[string]int
}

// NewLabelEncoder builds an encoder from the distinct values of labels.
func NewLabelEncoder(labels []string) *LabelEncoder {
	seen := make(map[string]struct{}, len(labels))
	distinct := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		distinct = append(distinct, l)
	}
	sort.Strings(distinct)

	enc := &LabelEncoder{
		labels: distinct,
		codes:  make(map[string]int, len(distinct)),
	}
	for i, l := range distinct {
		enc.codes[l] = i
	}
	return enc
}

// Encode returns the code for label.
func (e *LabelEncoder) Encode(label string) (int, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, fmt.Errorf("unknown label %q", label)
	}
	return code, nil
}

// Decode returns the label for code.
func (e *LabelEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.labels) {
		return "", fmt.Errorf("unknown label code %d", code)
	}
	return e.labels[code], nil
}

// Labels returns the known labels ordered by code.
func (e *LabelEncoder) Labels() []string {
	return append([]string(nil), e.labels...)
}

// Len returns the number of distinct labels.
func (e *LabelEncoder) Len() int {
	return len(e.labels)
}
