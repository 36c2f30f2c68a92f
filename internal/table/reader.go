package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/topsis/internal/validate"
)

// Read loads a delimited table from path. Paths ending in .zst are
// decompressed on the fly.
func Read(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), zstdExt) {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
	}

	t, err := Decode(r, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rows, cols := t.Matrix.Dims()
	log.Debug().
		Str("path", path).
		Int("alternatives", rows).
		Int("criteria", cols).
		Msg("table loaded")
	return t, nil
}

// Decode parses a delimited table from r and builds its numeric matrix.
func Decode(r io.Reader, opts Options) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: input file is empty", validate.ErrStructural)
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}
	if err := validate.Columns(len(header)); err != nil {
		return nil, err
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: input file has no data rows", validate.ErrStructural)
	}

	criteria := len(header) - 1
	data := make([]float64, 0, len(rows)*criteria)
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				validate.ErrStructural, i+1, len(row), len(header))
		}
		for j, cell := range row[1:] {
			v, err := validate.Cell(i+1, j+2, cell)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return &Table{
		Header: header,
		Rows:   rows,
		Matrix: mat.NewDense(len(rows), criteria, data),
	}, nil
}
