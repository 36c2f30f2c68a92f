package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/topsis/internal/topsis"
)

// Write renders t with the score and rank columns appended and stores it at
// path. A path ending in .json produces a Report instead of a delimited
// table, and a trailing .zst compresses either form. Nothing is written if
// rendering fails.
func Write(path string, t *Table, result topsis.Result, opts Options) error {
	lower := strings.ToLower(path)
	compressed := strings.HasSuffix(lower, zstdExt)
	lower = strings.TrimSuffix(lower, zstdExt)

	var (
		payload []byte
		err     error
	)
	if strings.HasSuffix(lower, jsonExt) {
		payload, err = EncodeJSON(t, result, opts)
	} else {
		payload, err = Encode(t, result, opts)
	}
	if err != nil {
		return err
	}

	if compressed {
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		payload = encoder.EncodeAll(payload, nil)
		encoder.Close()
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Debug().
		Str("path", path).
		Int("bytes", len(payload)).
		Bool("zstd", compressed).
		Msg("table written")
	return nil
}

func checkResult(t *Table, result topsis.Result) error {
	if len(result.Scores) != len(t.Rows) || len(result.Ranks) != len(t.Rows) {
		return fmt.Errorf("%w: %d rows, %d scores, %d ranks",
			topsis.ErrDimensionMismatch, len(t.Rows), len(result.Scores), len(result.Ranks))
	}
	return nil
}

func formatScore(score float64, precision int) string {
	return strconv.FormatFloat(topsis.Round(score, precision), 'f', -1, 64)
}

// Encode renders the augmented table in the configured delimited format.
func Encode(t *Table, result topsis.Result, opts Options) ([]byte, error) {
	if err := checkResult(t, result); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = opts.Comma

	header := append(append([]string{}, t.Header...), opts.ScoreColumn, opts.RankColumn)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}

	for i, row := range t.Rows {
		record := append(append([]string{}, row...),
			formatScore(result.Scores[i], opts.Precision),
			strconv.Itoa(result.Ranks[i]),
		)
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush delimited data: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJSON renders the augmented table as a Report.
func EncodeJSON(t *Table, result topsis.Result, opts Options) ([]byte, error) {
	if err := checkResult(t, result); err != nil {
		return nil, err
	}

	report := Report{
		Columns: append(append([]string{}, t.Header...), opts.ScoreColumn, opts.RankColumn),
		Rows:    make([]ReportRow, len(t.Rows)),
	}
	for i, row := range t.Rows {
		report.Rows[i] = ReportRow{
			Alternative: row[0],
			Values:      mat.Row(nil, i, t.Matrix),
			Score:       topsis.Round(result.Scores[i], opts.Precision),
			Rank:        result.Ranks[i],
		}
	}

	data, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}
