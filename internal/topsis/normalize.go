package topsis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalize returns a copy of m with every column divided by its Euclidean
// norm. m is left untouched.
func Normalize(m *mat.Dense) (*mat.Dense, error) {
	if m == nil || m.IsEmpty() {
		return nil, ErrEmptyMatrix
	}

	rows, cols := m.Dims()
	normalized := mat.NewDense(rows, cols, nil)
	column := make([]float64, rows)

	for colIdx := range cols {
		mat.Col(column, colIdx, m)
		if err := checkFinite(fmt.Sprintf("column %d", colIdx), column); err != nil {
			return nil, err
		}

		norm := floats.Norm(column, 2)
		if norm == 0 {
			return nil, fmt.Errorf("%w: column %d", ErrDegenerateColumn, colIdx)
		}

		for rowIdx := range column {
			column[rowIdx] /= norm
		}
		normalized.SetCol(colIdx, column)
	}

	return normalized, nil
}

// Weight returns a copy of normalized with column j multiplied by weights[j].
func Weight(normalized *mat.Dense, weights []float64) (*mat.Dense, error) {
	if normalized == nil || normalized.IsEmpty() {
		return nil, ErrEmptyMatrix
	}

	rows, cols := normalized.Dims()
	if len(weights) != cols {
		return nil, fmt.Errorf("%w: %d weights for %d criteria", ErrDimensionMismatch, len(weights), cols)
	}
	if err := checkFinite("weights", weights); err != nil {
		return nil, err
	}

	weighted := mat.NewDense(rows, cols, nil)
	weighted.Apply(func(_, j int, v float64) float64 {
		return v * weights[j]
	}, normalized)

	return weighted, nil
}
