package topsis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distances returns the Euclidean distance of every alternative to the ideal
// best and ideal worst points.
func Distances(weighted *mat.Dense, best, worst []float64) (distBest, distWorst []float64, err error) {
	if weighted == nil || weighted.IsEmpty() {
		return nil, nil, ErrEmptyMatrix
	}

	rows, cols := weighted.Dims()
	if len(best) != cols || len(worst) != cols {
		return nil, nil, fmt.Errorf("%w: ideal points of length %d/%d for %d criteria",
			ErrDimensionMismatch, len(best), len(worst), cols)
	}

	distBest = make([]float64, rows)
	distWorst = make([]float64, rows)
	row := make([]float64, cols)

	for rowIdx := range rows {
		mat.Row(row, rowIdx, weighted)
		distBest[rowIdx] = floats.Distance(row, best, 2)
		distWorst[rowIdx] = floats.Distance(row, worst, 2)
	}

	if err := checkFinite("distBest", distBest); err != nil {
		return nil, nil, err
	}
	if err := checkFinite("distWorst", distWorst); err != nil {
		return nil, nil, err
	}

	return distBest, distWorst, nil
}
