// Package validate rejects malformed decision input before it reaches the
// scoring engine.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tensorplex-labs/topsis/internal/topsis"
)

// ErrStructural wraps every validation failure.
var ErrStructural = errors.New("invalid input")

// MinColumns is the smallest source table: one identifier column plus two
// criteria.
const MinColumns = 3

func structuralf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructural, fmt.Sprintf(format, args...))
}

// ParseWeights parses a comma separated list of positive numbers.
func ParseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, structuralf("weights cannot be empty")
	}

	parts := strings.Split(s, ",")
	weights := make([]float64, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		w, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, structuralf("weight %d (%q) is not a number", i+1, part)
		}
		weights[i] = w
	}

	if err := Weights(weights); err != nil {
		return nil, err
	}
	return weights, nil
}

// Weights checks that every weight is a positive finite number.
func Weights(weights []float64) error {
	if len(weights) == 0 {
		return structuralf("weights cannot be empty")
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return structuralf("weight %d (%v) must be a positive finite number", i+1, w)
		}
	}
	return nil
}

// ParseImpacts parses a comma separated list of "+" and "-".
func ParseImpacts(s string) ([]topsis.Impact, error) {
	if strings.TrimSpace(s) == "" {
		return nil, structuralf("impacts cannot be empty")
	}
	return Impacts(strings.Split(s, ","))
}

// Impacts converts impact symbols, surrounding whitespace ignored.
func Impacts(symbols []string) ([]topsis.Impact, error) {
	if len(symbols) == 0 {
		return nil, structuralf("impacts cannot be empty")
	}

	impacts := make([]topsis.Impact, len(symbols))
	for i, symbol := range symbols {
		symbol = strings.TrimSpace(symbol)
		switch symbol {
		case "+":
			impacts[i] = topsis.Benefit
		case "-":
			impacts[i] = topsis.Cost
		default:
			return nil, structuralf("impacts must be '+' or '-', got %q at position %d", symbol, i+1)
		}
	}
	return impacts, nil
}

// Columns checks the width of the source table, identifier column included.
func Columns(numCols int) error {
	if numCols < MinColumns {
		return structuralf("input file must contain three or more columns, got %d", numCols)
	}
	return nil
}

// Counts checks that there is exactly one weight and one impact per
// criterion column.
func Counts(numWeights, numImpacts, numCriteria int) error {
	if numWeights != numImpacts {
		return structuralf("number of weights (%d) and number of impacts (%d) must be the same", numWeights, numImpacts)
	}
	if numWeights != numCriteria {
		return structuralf("number of weights, impacts (%d) and numeric columns (%d) must match", numWeights, numCriteria)
	}
	return nil
}

// Cell parses one numeric cell. row and col are 1-based positions in the
// data region and only used in the error.
func Cell(row, col int, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, structuralf("from 2nd to last columns must contain numeric values only: row %d, column %d is %q", row, col, raw)
	}
	return v, nil
}

// Matrix checks a raw numeric matrix as it arrives over the wire.
func Matrix(rows [][]float64) error {
	if len(rows) == 0 {
		return structuralf("matrix has no alternatives")
	}

	width := len(rows[0])
	if width < MinColumns-1 {
		return structuralf("matrix must have at least %d criteria, got %d", MinColumns-1, width)
	}
	for i, row := range rows {
		if len(row) != width {
			return structuralf("row %d has %d values, expected %d", i+1, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return structuralf("row %d, column %d is not a finite number", i+1, j+1)
			}
		}
	}
	return nil
}

// Decision validates raw inputs end to end and returns the parsed weight and
// impact vectors for a table with numCols columns.
func Decision(numCols int, rawWeights, rawImpacts string) ([]float64, []topsis.Impact, error) {
	if err := Columns(numCols); err != nil {
		return nil, nil, err
	}

	weights, err := ParseWeights(rawWeights)
	if err != nil {
		return nil, nil, err
	}

	impacts, err := ParseImpacts(rawImpacts)
	if err != nil {
		return nil, nil, err
	}

	if err := Counts(len(weights), len(impacts), numCols-1); err != nil {
		return nil, nil, err
	}
	return weights, impacts, nil
}
