package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultAlpha is Laplace smoothing.
const DefaultAlpha = 1.0

// NaiveBayes is a fitted multinomial naive-Bayes model over non-negative
// feature vectors. It is immutable after Fit and safe for concurrent use.
type NaiveBayes struct {
	classes      []int
	logPrior     []float64
	featLogProb  [][]float64 // [class][feature]
	featureCount int
}

// FitNaiveBayes estimates class priors from label frequencies and
// class-conditional feature log probabilities with additive smoothing alpha.
// Classes are the distinct labels of y in ascending order.
func FitNaiveBayes(x []Vector, y []int, alpha float64) (*NaiveBayes, error) {
	if len(x) == 0 {
		return nil, errors.New("fit naive bayes: no samples")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("fit naive bayes: %d samples but %d labels", len(x), len(y))
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("fit naive bayes: alpha must be positive, got %g", alpha)
	}
	nFeatures := len(x[0])

	classCount := make(map[int]int)
	for i, label := range y {
		if len(x[i]) != nFeatures {
			return nil, fmt.Errorf("fit naive bayes: sample %d has %d features, want %d", i, len(x[i]), nFeatures)
		}
		classCount[label]++
	}
	classes := make([]int, 0, len(classCount))
	for c := range classCount {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	index := make(map[int]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	featCount := make([][]float64, len(classes))
	for i := range featCount {
		featCount[i] = make([]float64, nFeatures)
	}
	for i, vec := range x {
		row := featCount[index[y[i]]]
		for j, v := range vec {
			if v < 0 {
				return nil, fmt.Errorf("fit naive bayes: negative feature at sample %d column %d", i, j)
			}
			row[j] += v
		}
	}

	nb := &NaiveBayes{
		classes:      classes,
		logPrior:     make([]float64, len(classes)),
		featLogProb:  make([][]float64, len(classes)),
		featureCount: nFeatures,
	}
	total := float64(len(y))
	for i, c := range classes {
		nb.logPrior[i] = math.Log(float64(classCount[c]) / total)

		var sum float64
		for _, v := range featCount[i] {
			sum += v
		}
		denom := math.Log(sum + alpha*float64(nFeatures))
		nb.featLogProb[i] = make([]float64, nFeatures)
		for j, v := range featCount[i] {
			nb.featLogProb[i][j] = math.Log(v+alpha) - denom
		}
	}
	return nb, nil
}

// NewNaiveBayes rebuilds a fitted model from its learned parameters.
func NewNaiveBayes(classes []int, logPrior []float64, featLogProb [][]float64) (*NaiveBayes, error) {
	if len(classes) == 0 {
		return nil, errors.New("naive bayes: no classes")
	}
	if len(logPrior) != len(classes) || len(featLogProb) != len(classes) {
		return nil, errors.New("naive bayes: parameter shape mismatch")
	}
	nFeatures := len(featLogProb[0])
	nb := &NaiveBayes{
		classes:      append([]int(nil), classes...),
		logPrior:     append([]float64(nil), logPrior...),
		featLogProb:  make([][]float64, len(classes)),
		featureCount: nFeatures,
	}
	for i, row := range featLogProb {
		if len(row) != nFeatures {
			return nil, errors.New("naive bayes: ragged feature log probabilities")
		}
		nb.featLogProb[i] = append([]float64(nil), row...)
	}
	return nb, nil
}

// PredictProba returns the posterior probability of every class, aligned with
// Classes(). The probabilities sum to 1.
func (nb *NaiveBayes) PredictProba(vec Vector) ([]float64, error) {
	if len(vec) != nb.featureCount {
		return nil, fmt.Errorf("predict: got %d features, want %d", len(vec), nb.featureCount)
	}
	jll := make([]float64, len(nb.classes))
	maxLL := math.Inf(-1)
	for i := range nb.classes {
		ll := nb.logPrior[i]
		for j, v := range vec {
			if v != 0 {
				ll += v * nb.featLogProb[i][j]
			}
		}
		jll[i] = ll
		if ll > maxLL {
			maxLL = ll
		}
	}

	// log-sum-exp keeps the softmax stable for long documents.
	var sum float64
	for _, ll := range jll {
		sum += math.Exp(ll - maxLL)
	}
	logNorm := maxLL + math.Log(sum)
	proba := make([]float64, len(jll))
	for i, ll := range jll {
		proba[i] = math.Exp(ll - logNorm)
	}
	return proba, nil
}

// Predict returns the most probable class and its probability. Ties resolve to
// the smallest class label.
func (nb *NaiveBayes) Predict(vec Vector) (class int, prob float64, err error) {
	proba, err := nb.PredictProba(vec)
	if err != nil {
		return 0, 0, err
	}
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return nb.classes[best], proba[best], nil
}

// Classes returns the class labels in ascending order.
func (nb *NaiveBayes) Classes() []int {
	return append([]int(nil), nb.classes...)
}

// LogPriors returns a copy of the class log priors aligned with Classes().
func (nb *NaiveBayes) LogPriors() []float64 {
	return append([]float64(nil), nb.logPrior...)
}

// FeatureLogProbs returns a copy of the per-class feature log probabilities.
func (nb *NaiveBayes) FeatureLogProbs() [][]float64 {
	out := make([][]float64, len(nb.featLogProb))
	for i, row := range nb.featLogProb {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
