package topsis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IdealPoints picks the best and worst value of every weighted column. For a
// Benefit criterion the best is the column maximum, for a Cost criterion it is
// the minimum.
func IdealPoints(weighted *mat.Dense, impacts []Impact) (best, worst []float64, err error) {
	if weighted == nil || weighted.IsEmpty() {
		return nil, nil, ErrEmptyMatrix
	}

	rows, cols := weighted.Dims()
	if len(impacts) != cols {
		return nil, nil, fmt.Errorf("%w: %d impacts for %d criteria", ErrDimensionMismatch, len(impacts), cols)
	}

	best = make([]float64, cols)
	worst = make([]float64, cols)
	column := make([]float64, rows)

	for colIdx, impact := range impacts {
		mat.Col(column, colIdx, weighted)
		hi, lo := floats.Max(column), floats.Min(column)

		switch impact {
		case Benefit:
			best[colIdx], worst[colIdx] = hi, lo
		case Cost:
			best[colIdx], worst[colIdx] = lo, hi
		default:
			return nil, nil, fmt.Errorf("%w: criterion %d has %v", ErrInvalidImpact, colIdx, impact)
		}
	}

	return best, worst, nil
}
