package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"space joined", "fever cough", []string{"fever", "cough"}},
		{"underscore kept", "runny_nose chest_pain", []string{"runny_nose", "chest_pain"}},
		{"lowercased", "Fever COUGH", []string{"fever", "cough"}},
		{"single chars dropped", "a fever b", []string{"fever"}},
		{"punctuation splits", "rash,itching;", []string{"rash", "itching"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFitVectorizer_VocabularySortedAndCapped(t *testing.T) {
	docs := []string{"fever cough", "fever rash", "fever cough itching"}

	v, err := FitVectorizer(docs, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"cough", "fever", "itching", "rash"}, v.Terms())

	capped, err := FitVectorizer(docs, 2)
	require.NoError(t, err)
	// fever (3) and cough (2) are the most frequent terms.
	assert.Equal(t, []string{"cough", "fever"}, capped.Terms())
	assert.False(t, capped.Has("rash"))
}

func TestFitVectorizer_TieBreakAlphabetical(t *testing.T) {
	v, err := FitVectorizer([]string{"zeta alpha", "beta"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, v.Terms())
}

func TestFitVectorizer_Errors(t *testing.T) {
	_, err := FitVectorizer(nil, 10)
	require.Error(t, err)

	_, err = FitVectorizer([]string{"", " "}, 10)
	require.Error(t, err)
}

func TestVectorizer_SmoothIDF(t *testing.T) {
	v, err := FitVectorizer([]string{"fever cough", "fever"}, 0)
	require.NoError(t, err)

	idf := v.IDF()
	// cough: df=1, fever: df=2, n=2
	assert.InDelta(t, math.Log(3.0/2.0)+1, idf[0], 1e-12)
	assert.InDelta(t, 1.0, idf[1], 1e-12)
}

func TestVectorizer_TransformNormalizedAndIgnoresUnknown(t *testing.T) {
	v, err := FitVectorizer([]string{"fever cough", "rash"}, 0)
	require.NoError(t, err)

	vec := v.Transform("fever cough sneezing")
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-12)

	zero := v.Transform("sneezing")
	for _, x := range zero {
		assert.Zero(t, x)
	}
	assert.Len(t, v.Transform(""), v.Size())
}

func TestNewVectorizer_RoundTrip(t *testing.T) {
	v, err := FitVectorizer([]string{"fever cough", "rash itching"}, 0)
	require.NoError(t, err)

	rebuilt, err := NewVectorizer(v.Terms(), v.IDF())
	require.NoError(t, err)
	assert.Equal(t, v.Transform("fever rash"), rebuilt.Transform("fever rash"))

	_, err = NewVectorizer([]string{"a", "a"}, []float64{1, 1})
	require.Error(t, err)
	_, err = NewVectorizer([]string{"a"}, nil)
	require.Error(t, err)
}

func TestFitNaiveBayes_PriorsAndSmoothing(t *testing.T) {
	x := []Vector{{1, 0}, {1, 0}, {0, 1}}
	y := []int{0, 0, 1}

	nb, err := FitNaiveBayes(x, y, DefaultAlpha)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, nb.Classes())
	priors := nb.LogPriors()
	assert.InDelta(t, math.Log(2.0/3.0), priors[0], 1e-12)
	assert.InDelta(t, math.Log(1.0/3.0), priors[1], 1e-12)

	flp := nb.FeatureLogProbs()
	// class 0: counts (2, 0) → ((2+1)/4, (0+1)/4)
	assert.InDelta(t, math.Log(3.0/4.0), flp[0][0], 1e-12)
	assert.InDelta(t, math.Log(1.0/4.0), flp[0][1], 1e-12)
}

func TestFitNaiveBayes_Errors(t *testing.T) {
	_, err := FitNaiveBayes(nil, nil, 1)
	require.Error(t, err)
	_, err = FitNaiveBayes([]Vector{{1}}, []int{0, 1}, 1)
	require.Error(t, err)
	_, err = FitNaiveBayes([]Vector{{1}}, []int{0}, 0)
	require.Error(t, err)
	_, err = FitNaiveBayes([]Vector{{1}, {1, 2}}, []int{0, 1}, 1)
	require.Error(t, err)
	_, err = FitNaiveBayes([]Vector{{-1}}, []int{0}, 1)
	require.Error(t, err)
}

func TestNaiveBayes_PredictProbaSumsToOne(t *testing.T) {
	x := []Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}
	y := []int{0, 1, 2, 0}
	nb, err := FitNaiveBayes(x, y, DefaultAlpha)
	require.NoError(t, err)

	for _, vec := range []Vector{{0, 0, 0}, {1, 0, 0}, {0.3, 0.7, 0.1}} {
		proba, err := nb.PredictProba(vec)
		require.NoError(t, err)
		var sum float64
		for _, p := range proba {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	_, err = nb.PredictProba(Vector{1})
	require.Error(t, err)
}

func TestNaiveBayes_EmptyVectorUsesPriors(t *testing.T) {
	x := []Vector{{1, 0}, {1, 0}, {0, 1}}
	y := []int{3, 3, 7}
	nb, err := FitNaiveBayes(x, y, DefaultAlpha)
	require.NoError(t, err)

	class, prob, err := nb.Predict(Vector{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, class)
	assert.InDelta(t, 2.0/3.0, prob, 1e-12)
}

func TestNewNaiveBayes_RoundTrip(t *testing.T) {
	nb, err := FitNaiveBayes([]Vector{{1, 0}, {0, 1}}, []int{0, 1}, DefaultAlpha)
	require.NoError(t, err)

	rebuilt, err := NewNaiveBayes(nb.Classes(), nb.LogPriors(), nb.FeatureLogProbs())
	require.NoError(t, err)

	want, err := nb.PredictProba(Vector{0.2, 0.9})
	require.NoError(t, err)
	got, err := rebuilt.PredictProba(Vector{0.2, 0.9})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewNaiveBayes(nil, nil, nil)
	require.Error(t, err)
	_, err = NewNaiveBayes([]int{0}, []float64{0, 1}, [][]float64{{0}})
	require.Error(t, err)
}

func TestTrainTestSplit(t *testing.T) {
	s, err := TrainTestSplit(10, 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, s.HeldOut, 2)
	assert.Len(t, s.Train, 8)

	seen := make(map[int]bool)
	for _, i := range append(append([]int{}, s.Train...), s.HeldOut...) {
		assert.False(t, seen[i], "index %d repeated", i)
		seen[i] = true
	}
	assert.Len(t, seen, 10)

	again, err := TrainTestSplit(10, 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestTrainTestSplit_Bounds(t *testing.T) {
	s, err := TrainTestSplit(1, 0.5, 1)
	require.NoError(t, err)
	assert.Len(t, s.Train, 1)
	assert.Empty(t, s.HeldOut)

	s, err = TrainTestSplit(4, 0, 1)
	require.NoError(t, err)
	assert.Len(t, s.Train, 4)
	assert.Empty(t, s.HeldOut)

	_, err = TrainTestSplit(0, 0.2, 1)
	require.Error(t, err)
	_, err = TrainTestSplit(5, 1, 1)
	require.Error(t, err)
	_, err = TrainTestSplit(5, -0.1, 1)
	require.Error(t, err)
}
