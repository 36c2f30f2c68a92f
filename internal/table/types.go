// Package table reads decision tables from delimited files and writes them
// back with score and rank columns appended.
package table

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/topsis/internal/config"
	"github.com/tensorplex-labs/topsis/internal/topsis"
)

const (
	DefaultScoreColumn = "Topsis Score"
	DefaultRankColumn  = "Rank"

	zstdExt = ".zst"
	jsonExt = ".json"
)

// Table is a decision table as loaded from disk. The first column holds the
// alternative identifiers, the rest are criteria.
type Table struct {
	Header []string   // every column name, identifier column first
	Rows   [][]string // raw cells in file order
	Matrix *mat.Dense // numeric view of Rows without the identifier column
}

// Alternatives returns the identifier of every row.
func (t *Table) Alternatives() []string {
	ids := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		ids[i] = row[0]
	}
	return ids
}

// Criteria returns the names of the numeric columns.
func (t *Table) Criteria() []string {
	return t.Header[1:]
}

type Options struct {
	Comma       rune
	ScoreColumn string
	RankColumn  string
	Precision   int
}

func DefaultOptions() Options {
	return Options{
		Comma:       ',',
		ScoreColumn: DefaultScoreColumn,
		RankColumn:  DefaultRankColumn,
		Precision:   topsis.DefaultPrecision,
	}
}

func OptionsFromConfig(cfg *config.AppConfig) Options {
	return Options{
		Comma:       cfg.Comma(),
		ScoreColumn: cfg.ScoreColumn,
		RankColumn:  cfg.RankColumn,
		Precision:   cfg.ScorePrecision,
	}
}

// Report is the JSON rendering of a scored table.
type Report struct {
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}

type ReportRow struct {
	Alternative string    `json:"alternative"`
	Values      []float64 `json:"values"`
	Score       float64   `json:"score"`
	Rank        int       `json:"rank"`
}
