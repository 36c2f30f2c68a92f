package topsis

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func referenceMatrix() *mat.Dense {
	return mat.NewDense(5, 4, []float64{
		250, 16, 12, 5,
		200, 16, 8, 3,
		300, 32, 16, 4,
		275, 32, 8, 4,
		225, 16, 16, 2,
	})
}

var (
	referenceWeights = []float64{0.25, 0.25, 0.25, 0.25}
	referenceImpacts = []Impact{Cost, Benefit, Benefit, Benefit}
)

func TestComputeReferenceScenario(t *testing.T) {
	result, err := Compute(referenceMatrix(), referenceWeights, referenceImpacts)
	require.NoError(t, err)

	expected := []float64{
		0.5342768571821003,
		0.3083677687324685,
		0.6916322312675315,
		0.534736584486838,
		0.40104612151678615,
	}
	for i, want := range expected {
		assert.InDelta(t, want, result.Scores[i], 1e-9, "score of alternative %d", i)
	}

	assert.Equal(t, []float64{0.534, 0.308, 0.692, 0.535, 0.401}, result.Rounded())
	assert.Equal(t, []int{3, 5, 1, 2, 4}, result.Ranks)

	assert.InDeltaSlice(t, []float64{0.0885614885540095, 0.1507556722888818, 0.1428571428571428, 0.1494035761667992}, result.IdealBest, 1e-12)
	assert.InDeltaSlice(t, []float64{0.1328422328310143, 0.0753778361444409, 0.0714285714285714, 0.0597614304667197}, result.IdealWorst, 1e-12)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	m := referenceMatrix()
	before := mat.DenseCopyOf(m)

	_, err := Compute(m, referenceWeights, referenceImpacts)
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, m))
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name    string
		matrix  *mat.Dense
		weights []float64
		impacts []Impact
		wantErr error
	}{
		{
			name:    "nil matrix",
			matrix:  nil,
			wantErr: ErrEmptyMatrix,
		},
		{
			name:    "zero value matrix",
			matrix:  &mat.Dense{},
			wantErr: ErrEmptyMatrix,
		},
		{
			name:    "too few weights",
			matrix:  referenceMatrix(),
			weights: []float64{1, 1, 1},
			impacts: referenceImpacts,
			wantErr: ErrDimensionMismatch,
		},
		{
			name:    "too many impacts",
			matrix:  referenceMatrix(),
			weights: referenceWeights,
			impacts: []Impact{Cost, Benefit, Benefit, Benefit, Cost},
			wantErr: ErrDimensionMismatch,
		},
		{
			name:    "zero column",
			matrix:  mat.NewDense(3, 2, []float64{1, 0, 2, 0, 3, 0}),
			weights: []float64{1, 1},
			impacts: []Impact{Benefit, Benefit},
			wantErr: ErrDegenerateColumn,
		},
		{
			name:    "single alternative",
			matrix:  mat.NewDense(1, 3, []float64{4, 5, 6}),
			weights: []float64{1, 1, 1},
			impacts: []Impact{Benefit, Cost, Benefit},
			wantErr: ErrDegenerateDistance,
		},
		{
			name:    "identical alternatives",
			matrix:  mat.NewDense(3, 2, []float64{7, 2, 7, 2, 7, 2}),
			weights: []float64{1, 2},
			impacts: []Impact{Benefit, Cost},
			wantErr: ErrDegenerateDistance,
		},
		{
			name:    "NaN cell",
			matrix:  mat.NewDense(2, 2, []float64{1, math.NaN(), 2, 3}),
			weights: []float64{1, 1},
			impacts: []Impact{Benefit, Benefit},
			wantErr: ErrNonFinite,
		},
		{
			name:    "infinite weight",
			matrix:  mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			weights: []float64{math.Inf(1), 1},
			impacts: []Impact{Benefit, Benefit},
			wantErr: ErrNonFinite,
		},
		{
			name:    "unknown impact",
			matrix:  mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			weights: []float64{1, 1},
			impacts: []Impact{Benefit, Impact(7)},
			wantErr: ErrInvalidImpact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.matrix, tt.weights, tt.impacts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result.Scores)
			assert.Nil(t, result.Ranks)
		})
	}
}

func TestComputeNearMaxFloatWeights(t *testing.T) {
	matrix := mat.NewDense(2, 4, []float64{
		1, 1, 1, 1,
		2, 2, 2, 2,
	})
	weights := []float64{1.7e308, 1.7e308, 1.7e308, 1.7e308}
	impacts := []Impact{Benefit, Cost, Benefit, Cost}

	result, err := Compute(matrix, weights, impacts)
	require.NoError(t, err)
	require.True(t, math.IsInf(result.DistBest[0]+result.DistWorst[0], 1), "distances sum past MaxFloat64")
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, result.Scores, 1e-12)
	assert.Equal(t, []int{1, 2}, result.Ranks)
}

func TestComputeSingleCriterion(t *testing.T) {
	result, err := Compute(mat.NewDense(3, 1, []float64{1, 3, 2}), []float64{1}, []Impact{Benefit})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 0.5}, result.Rounded())
	assert.Equal(t, []int{3, 1, 2}, result.Ranks)
}

func TestComputeTieKeepsRowOrder(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 2,
		1, 2,
		3, 1,
	})

	result, err := Compute(m, []float64{1, 1}, []Impact{Benefit, Benefit})
	require.NoError(t, err)

	assert.Equal(t, result.Scores[0], result.Scores[1])
	assert.Equal(t, []int{2, 3, 1}, result.Ranks)
}

func randomMatrix(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 1 + rng.Float64()*99
	}
	return mat.NewDense(rows, cols, data)
}

func randomProblem(rng *rand.Rand) (*mat.Dense, []float64, []Impact) {
	rows := 2 + rng.IntN(30)
	cols := 2 + rng.IntN(6)

	weights := make([]float64, cols)
	impacts := make([]Impact, cols)
	for j := range cols {
		weights[j] = 0.1 + rng.Float64()
		if rng.IntN(2) == 0 {
			impacts[j] = Cost
		}
	}
	return randomMatrix(rng, rows, cols), weights, impacts
}

func TestComputeProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for trial := range 200 {
		m, weights, impacts := randomProblem(rng)

		result, err := Compute(m, weights, impacts)
		require.NoError(t, err, "trial %d", trial)

		rows, _ := m.Dims()
		seen := make([]bool, rows+1)
		for i, score := range result.Scores {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)

			rank := result.Ranks[i]
			require.True(t, rank >= 1 && rank <= rows, "rank %d out of range", rank)
			require.False(t, seen[rank], "rank %d assigned twice", rank)
			seen[rank] = true
		}

		for i := range result.Scores {
			for j := range result.Scores {
				if result.Scores[i] > result.Scores[j] {
					assert.Less(t, result.Ranks[i], result.Ranks[j])
				}
			}
		}

		again, err := Compute(m, weights, impacts)
		require.NoError(t, err)
		assert.Equal(t, result.Scores, again.Scores)
		assert.Equal(t, result.Ranks, again.Ranks)
	}
}

func TestComputeUniformWeightScaling(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 11))

	for range 50 {
		m, weights, impacts := randomProblem(rng)
		base, err := Compute(m, weights, impacts)
		require.NoError(t, err)

		for _, factor := range []float64{0.5, 2, 8} {
			scaled := make([]float64, len(weights))
			for j, w := range weights {
				scaled[j] = w * factor
			}

			result, err := Compute(m, scaled, impacts)
			require.NoError(t, err)
			assert.Equal(t, base.Ranks, result.Ranks, "factor %v", factor)
			assert.InDeltaSlice(t, base.Scores, result.Scores, 1e-12)
		}
	}
}

func TestEngineOptions(t *testing.T) {
	e := NewEngine(WithPrecision(1))

	result, err := e.ComputeDecision(Decision{
		Matrix:  referenceMatrix(),
		Weights: referenceWeights,
		Impacts: referenceImpacts,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Precision)
	assert.Equal(t, []float64{0.5, 0.3, 0.7, 0.5, 0.4}, result.Rounded())
}

func TestParseImpact(t *testing.T) {
	tests := []struct {
		in      string
		want    Impact
		wantErr bool
	}{
		{"+", Benefit, false},
		{" - ", Cost, false},
		{"Benefit", Benefit, false},
		{"cost", Cost, false},
		{"*", 0, true},
		{"", 0, true},
		{"++", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseImpact(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImpact)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(ParseImpact(got.String())))
		})
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
