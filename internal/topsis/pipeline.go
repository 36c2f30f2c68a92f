// Package topsis ranks alternatives with the Technique for Order Preference
// by Similarity to Ideal Solution.
package topsis

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/topsis/internal/utils/logger"
)

// Engine runs the normalize, weight, ideal point, distance, score and rank
// steps. It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	Precision int
	sugar     *zap.SugaredLogger
}

type EngineOption func(*Engine)

// WithPrecision sets the decimal digits used by Result.Rounded.
func WithPrecision(precision int) EngineOption {
	return func(e *Engine) {
		e.Precision = precision
	}
}

// WithLogger replaces the stage logger, which defaults to logger.Sugar().
func WithLogger(sugar *zap.SugaredLogger) EngineOption {
	return func(e *Engine) {
		e.sugar = sugar
	}
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		Precision: DefaultPrecision,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.sugar == nil {
		e.sugar = logger.Sugar()
	}
	return e
}

// Compute scores and ranks every row of matrix. The matrix is not modified.
func (e *Engine) Compute(matrix *mat.Dense, weights []float64, impacts []Impact) (Result, error) {
	startTime := time.Now()

	if matrix == nil || matrix.IsEmpty() {
		return Result{}, ErrEmptyMatrix
	}
	rows, cols := matrix.Dims()
	if len(weights) != cols || len(impacts) != cols {
		return Result{}, fmt.Errorf("%w: %d criteria, %d weights, %d impacts",
			ErrDimensionMismatch, cols, len(weights), len(impacts))
	}

	e.sugar.Debugw("computing topsis", "alternatives", rows, "criteria", cols, "weights", weights, "impacts", impacts)

	normalized, err := Normalize(matrix)
	if err != nil {
		return Result{}, fmt.Errorf("normalize: %w", err)
	}

	weighted, err := Weight(normalized, weights)
	if err != nil {
		return Result{}, fmt.Errorf("weight: %w", err)
	}
	log.Trace().Msgf("weighted normalized matrix:\n%v", mat.Formatted(weighted, mat.Squeeze()))

	best, worst, err := IdealPoints(weighted, impacts)
	if err != nil {
		return Result{}, fmt.Errorf("ideal points: %w", err)
	}
	e.sugar.Debugw("ideal points", "best", best, "worst", worst)

	distBest, distWorst, err := Distances(weighted, best, worst)
	if err != nil {
		return Result{}, fmt.Errorf("distances: %w", err)
	}

	scores, err := Closeness(distBest, distWorst)
	if err != nil {
		return Result{}, fmt.Errorf("score: %w", err)
	}

	ranks := Rank(scores)

	log.Debug().
		Int("alternatives", rows).
		Int("criteria", cols).
		Dur("elapsed", time.Since(startTime)).
		Msg("topsis computed")

	return Result{
		Scores:     scores,
		Ranks:      ranks,
		IdealBest:  best,
		IdealWorst: worst,
		DistBest:   distBest,
		DistWorst:  distWorst,
		Precision:  e.Precision,
	}, nil
}

// ComputeDecision is Compute for an already assembled Decision.
func (e *Engine) ComputeDecision(d Decision) (Result, error) {
	return e.Compute(d.Matrix, d.Weights, d.Impacts)
}

// Compute runs a default Engine.
func Compute(matrix *mat.Dense, weights []float64, impacts []Impact) (Result, error) {
	return NewEngine().Compute(matrix, weights, impacts)
}
