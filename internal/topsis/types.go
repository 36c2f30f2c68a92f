package topsis

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Impact is the preferred direction of a criterion.
type Impact int

const (
	Benefit Impact = iota // higher raw values are better, written "+"
	Cost                  // lower raw values are better, written "-"
)

func (i Impact) String() string {
	switch i {
	case Benefit:
		return "+"
	case Cost:
		return "-"
	}
	return fmt.Sprintf("Impact(%d)", int(i))
}

// ParseImpact accepts "+"/"-" and the spelled out "benefit"/"cost".
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "benefit":
		return Benefit, nil
	case "-", "cost":
		return Cost, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidImpact, s)
}

// Decision is a fully parsed decision problem ready to be scored.
type Decision struct {
	Matrix  *mat.Dense // m alternatives x n criteria
	Weights []float64  // one raw multiplier per criterion
	Impacts []Impact   // one direction per criterion
}

// Result holds the output of a single Compute call. Every slice is freshly
// allocated and owned by the caller.
type Result struct {
	Scores     []float64 // full precision closeness, one per alternative
	Ranks      []int     // 1 is the best alternative
	IdealBest  []float64
	IdealWorst []float64
	DistBest   []float64
	DistWorst  []float64
	Precision  int // decimal digits used by Rounded
}

// Rounded returns the scores rounded for presentation. Ranks are never
// derived from these values.
func (r Result) Rounded() []float64 {
	return RoundAll(r.Scores, r.Precision)
}
