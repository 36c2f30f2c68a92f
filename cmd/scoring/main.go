package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/topsis/internal/config"
	"github.com/tensorplex-labs/topsis/internal/table"
	"github.com/tensorplex-labs/topsis/internal/topsis"
	"github.com/tensorplex-labs/topsis/internal/utils/logger"
)

type scenario struct {
	name         string
	alternatives []string
	matrix       *mat.Dense
	weights      []float64
	impacts      []topsis.Impact
}

func main() {
	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}
	logger.Init(cfg.Environment, cfg.LogLevel)

	engine := topsis.NewEngine(topsis.WithPrecision(cfg.ScorePrecision))
	opts := table.OptionsFromConfig(cfg)
	for _, sc := range scenarios() {
		runScenario(engine, opts, sc)
	}
}

func scenarios() []scenario {
	return []scenario{
		{
			name:         "phones (price is a cost)",
			alternatives: []string{"M1", "M2", "M3", "M4", "M5"},
			matrix: mat.NewDense(5, 4, []float64{
				250, 16, 12, 5,
				200, 16, 8, 3,
				300, 32, 16, 4,
				275, 32, 8, 4,
				225, 16, 16, 2,
			}),
			weights: []float64{0.25, 0.25, 0.25, 0.25},
			impacts: []topsis.Impact{topsis.Cost, topsis.Benefit, topsis.Benefit, topsis.Benefit},
		},
		{
			name:         "tie broken by row order",
			alternatives: []string{"first", "second", "third"},
			matrix: mat.NewDense(3, 2, []float64{
				1, 2,
				1, 2,
				3, 1,
			}),
			weights: []float64{1, 1},
			impacts: []topsis.Impact{topsis.Benefit, topsis.Benefit},
		},
		{
			name:         "degenerate column",
			alternatives: []string{"a", "b"},
			matrix:       mat.NewDense(2, 2, []float64{0, 1, 0, 2}),
			weights:      []float64{1, 1},
			impacts:      []topsis.Impact{topsis.Benefit, topsis.Cost},
		},
	}
}

// asTable lays a scenario out the way the table reader would have loaded it.
func asTable(sc scenario) *table.Table {
	rows, cols := sc.matrix.Dims()
	header := []string{"Alternative"}
	for j := range cols {
		header = append(header, fmt.Sprintf("C%d%s", j+1, sc.impacts[j]))
	}

	records := make([][]string, rows)
	for i := range rows {
		records[i] = []string{sc.alternatives[i]}
		for j := range cols {
			records[i] = append(records[i], strconv.FormatFloat(sc.matrix.At(i, j), 'f', -1, 64))
		}
	}
	return &table.Table{Header: header, Rows: records, Matrix: sc.matrix}
}

func runScenario(engine *topsis.Engine, opts table.Options, sc scenario) {
	log.Info().Msgf("--- %s ---", sc.name)

	result, err := engine.Compute(sc.matrix, sc.weights, sc.impacts)
	if err != nil {
		log.Error().Err(err).Str("scenario", sc.name).Msg("scenario failed")
		return
	}

	rounded := result.Rounded()
	for i, alternative := range sc.alternatives {
		log.Info().
			Str("alternative", alternative).
			Float64("score", rounded[i]).
			Int("rank", result.Ranks[i]).
			Msg(fmt.Sprintf("%s ranked %d", alternative, result.Ranks[i]))
	}

	plotScores(os.Stdout, sc.name, sc.alternatives, result.Scores, result.Ranks)

	rendered, err := table.Encode(asTable(sc), result, opts)
	if err != nil {
		log.Error().Err(err).Str("scenario", sc.name).Msg("failed to render result table")
		return
	}
	fmt.Fprintf(os.Stdout, "\n%s", rendered)
}
