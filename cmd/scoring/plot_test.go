package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/topsis/internal/table"
	"github.com/tensorplex-labs/topsis/internal/topsis"
)

func TestPlotScores(t *testing.T) {
	var buf bytes.Buffer
	plotScores(&buf, "demo", []string{"low", "high", "zero"}, []float64{0.25, 1, 0}, []int{2, 1, 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "demo", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "   1 | high"), lines[3])
	assert.Contains(t, lines[3], strings.Repeat("█", maxBarWidth))
	assert.Contains(t, lines[4], "0.250 | "+strings.Repeat("█", 10))
	assert.True(t, strings.HasSuffix(lines[5], "▏"), lines[5])
}

func TestScenariosRun(t *testing.T) {
	for _, sc := range scenarios() {
		rows, _ := sc.matrix.Dims()
		assert.Len(t, sc.alternatives, rows, sc.name)
	}
}

func TestAsTable(t *testing.T) {
	sc := scenarios()[0]
	result, err := topsis.Compute(sc.matrix, sc.weights, sc.impacts)
	require.NoError(t, err)

	opts := table.DefaultOptions()
	opts.ScoreColumn = "Score"
	rendered, err := table.Encode(asTable(sc), result, opts)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(rendered)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Alternative,C1-,C2+,C3+,C4+,Score,Rank", lines[0])
	assert.Equal(t, "M3,300,32,16,4,0.692,1", lines[3])
}
