package topsis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNormalize(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		3, 1,
		4, 1,
	})

	normalized, err := Normalize(m)
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{
		0.6, 0.7071067811865475,
		0.8, 0.7071067811865475,
	})
	assert.True(t, mat.EqualApprox(want, normalized, 1e-12), "got\n%v", mat.Formatted(normalized))
	assert.Equal(t, 3.0, m.At(0, 0), "input must not change")
}

func TestNormalizeDegenerateColumn(t *testing.T) {
	_, err := Normalize(mat.NewDense(2, 3, []float64{1, 0, 2, 3, 0, 4}))
	require.ErrorIs(t, err, ErrDegenerateColumn)
	assert.Contains(t, err.Error(), "column 1")
}

func TestNormalizeNegativeValues(t *testing.T) {
	normalized, err := Normalize(mat.NewDense(2, 1, []float64{-3, 4}))
	require.NoError(t, err)
	assert.InDelta(t, -0.6, normalized.At(0, 0), 1e-12)
	assert.InDelta(t, 0.8, normalized.At(1, 0), 1e-12)
}

func TestWeight(t *testing.T) {
	normalized := mat.NewDense(2, 2, []float64{
		0.6, 0.5,
		0.8, 0.5,
	})

	weighted, err := Weight(normalized, []float64{2, 0.5})
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{
		1.2, 0.25,
		1.6, 0.25,
	})
	assert.True(t, mat.EqualApprox(want, weighted, 1e-12))
	assert.Equal(t, 0.6, normalized.At(0, 0))

	_, err = Weight(normalized, []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestIdealPoints(t *testing.T) {
	weighted := mat.NewDense(3, 2, []float64{
		0.1, 0.9,
		0.5, 0.2,
		0.3, 0.4,
	})

	best, worst, err := IdealPoints(weighted, []Impact{Benefit, Cost})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.2}, best)
	assert.Equal(t, []float64{0.1, 0.9}, worst)

	_, _, err = IdealPoints(weighted, []Impact{Benefit})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDistances(t *testing.T) {
	weighted := mat.NewDense(2, 2, []float64{
		0, 0,
		3, 4,
	})

	distBest, distWorst, err := Distances(weighted, []float64{3, 4}, []float64{0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 0}, distBest, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 5}, distWorst, 1e-12)

	_, _, err = Distances(weighted, []float64{3}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCloseness(t *testing.T) {
	scores, err := Closeness([]float64{1, 0, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75, 1, 0.25}, scores)

	_, err = Closeness([]float64{1, 0}, []float64{1, 0})
	require.ErrorIs(t, err, ErrDegenerateDistance)
	assert.Contains(t, err.Error(), "alternative 1")

	_, err = Closeness([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestClosenessLargeDistances(t *testing.T) {
	big := math.MaxFloat64
	scores, err := Closeness([]float64{big, big / 3, big}, []float64{big, big, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, scores[0])
	assert.InDelta(t, 0.75, scores[1], 1e-12)
	assert.Equal(t, 0.0, scores[2])

	_, err = Closeness([]float64{math.Inf(1)}, []float64{1})
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestRank(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   []int
	}{
		{"empty", []float64{}, []int{}},
		{"single", []float64{0.4}, []int{1}},
		{"descending", []float64{0.9, 0.5, 0.1}, []int{1, 2, 3}},
		{"ascending", []float64{0.1, 0.5, 0.9}, []int{3, 2, 1}},
		{"ties keep input order", []float64{0.5, 0.7, 0.5, 0.7}, []int{3, 1, 4, 2}},
		{"all equal", []float64{0.3, 0.3, 0.3}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.scores))
		})
	}
}

func TestRankUsesFullPrecision(t *testing.T) {
	// both round to 0.535 but must not tie
	ranks := Rank([]float64{0.5346, 0.5354})
	assert.Equal(t, []int{2, 1}, ranks)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.692, Round(0.6916322312675315, 3))
	assert.Equal(t, 0.4, Round(0.40104612151678615, 1))
	assert.Equal(t, 1.0, Round(0.9996, 3))
	assert.Equal(t, 0.123456, Round(0.123456, -1))
	assert.Equal(t, []float64{0.1, 0.2}, RoundAll([]float64{0.14, 0.16}, 1))
}
