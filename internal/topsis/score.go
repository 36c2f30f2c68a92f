package topsis

import (
	"fmt"
	"math"
)

// Closeness computes dWorst / (dBest + dWorst) for every alternative.
func Closeness(distBest, distWorst []float64) ([]float64, error) {
	if len(distBest) != len(distWorst) {
		return nil, fmt.Errorf("%w: %d best distances, %d worst distances",
			ErrDimensionMismatch, len(distBest), len(distWorst))
	}

	scores := make([]float64, len(distBest))
	for i := range distBest {
		best, worst := distBest[i], distWorst[i]
		total := best + worst
		if total == 0 {
			return nil, fmt.Errorf("%w: alternative %d", ErrDegenerateDistance, i)
		}
		if math.IsInf(total, 1) {
			// finite distances whose sum overflows: rescale by the larger one
			scale := max(best, worst)
			best, worst = best/scale, worst/scale
			total = best + worst
		}
		scores[i] = worst / total
	}

	if err := checkFinite("scores", scores); err != nil {
		return nil, err
	}
	return scores, nil
}
