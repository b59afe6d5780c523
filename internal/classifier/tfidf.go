package classifier

import (
	"errors"
	"math"
	"sort"
)

// DefaultMaxFeatures caps the vocabulary far above any realistic symptom list.
const DefaultMaxFeatures = 5000

// Vector is a dense TF-IDF row indexed by vocabulary column.
type Vector []float64

// Vectorizer converts documents into L2-normalized TF-IDF vectors.
// A fitted Vectorizer is read-only and safe for concurrent Transform calls.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// FitVectorizer learns the vocabulary and IDF weights from docs. Only the
// maxFeatures most frequent terms (by corpus count) are kept; ties go to the
// alphabetically smaller term. maxFeatures <= 0 keeps every term.
func FitVectorizer(docs []string, maxFeatures int) (*Vectorizer, error) {
	if len(docs) == 0 {
		return nil, errors.New("fit vectorizer: no documents")
	}

	counts := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			counts[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	if len(counts) == 0 {
		return nil, errors.New("fit vectorizer: empty vocabulary")
	}
	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if counts[terms[i]] == counts[terms[j]] {
				return terms[i] < terms[j]
			}
			return counts[terms[i]] > counts[terms[j]]
		})
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v, nil
}

// NewVectorizer rebuilds a fitted vectorizer from its terms and IDF weights.
func NewVectorizer(terms []string, idf []float64) (*Vectorizer, error) {
	if len(terms) != len(idf) {
		return nil, errors.New("vectorizer: terms and idf length mismatch")
	}
	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: append([]string(nil), terms...),
		idf:   append([]float64(nil), idf...),
	}
	for i, t := range v.terms {
		if _, dup := v.vocab[t]; dup {
			return nil, errors.New("vectorizer: duplicate term " + t)
		}
		v.vocab[t] = i
	}
	return v, nil
}

// Transform vectorizes one document. Terms outside the vocabulary are ignored;
// a document with no known terms yields an all-zero vector.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector, len(v.terms))
	for _, tok := range Tokenize(doc) {
		if i, ok := v.vocab[tok]; ok {
			vec[i]++
		}
	}
	var norm float64
	for i, tf := range vec {
		if tf == 0 {
			continue
		}
		vec[i] = tf * v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// TransformAll vectorizes each document in order.
func (v *Vectorizer) TransformAll(docs []string) []Vector {
	out := make([]Vector, len(docs))
	for i, d := range docs {
		out[i] = v.Transform(d)
	}
	return out
}

// Terms returns a copy of the vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	return append([]string(nil), v.terms...)
}

// IDF returns a copy of the IDF weights in column order.
func (v *Vectorizer) IDF() []float64 {
	return append([]float64(nil), v.idf...)
}

// Has reports whether term is part of the fitted vocabulary.
func (v *Vectorizer) Has(term string) bool {
	_, ok := v.vocab[term]
	return ok
}

// Size returns the number of vocabulary columns.
func (v *Vectorizer) Size() int {
	return len(v.terms)
}
