package topsis

import (
	"fmt"
	"math"
)

func checkFinite(stage string, values []float64) error {
	for idx, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, stage, idx, v)
		}
	}
	return nil
}

// Round rounds v half away from zero to the given number of decimal digits.
func Round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// RoundAll returns a rounded copy of values.
func RoundAll(values []float64, precision int) []float64 {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = Round(v, precision)
	}
	return rounded
}
