// Package scores reads and writes classifier score tables.
//
// The table layout is the one pandas produces for a two-column DataFrame:
// a header row, a row index in column 0, class-0 scores in column 1 and
// class-1 scores in column 2. Blank cells are skipped, so the classes may
// differ in size.
package scores

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// Header names written for the two score columns.
const (
	Class0Header = "score_0"
	Class1Header = "score_1"
)

// Errors returned while reading a score table.
var (
	ErrUnsupportedFormat = errors.New("unsupported score file format")
	ErrMissingColumn     = errors.New("score column missing")
	ErrInvalidColumns    = errors.New("invalid score columns")
	ErrMalformedCell     = errors.New("malformed score cell")
	ErrNoScores          = errors.New("no scores for class")
)

// Load reads a score table, choosing the format from the file extension.
func Load(path string, opts ...Option) (hmeasure.BinaryClassScores, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path, opts...)
	case ".xlsx":
		return LoadXLSX(path, opts...)
	default:
		return hmeasure.BinaryClassScores{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// parseRows extracts both score columns from raw table rows. Row numbers in
// errors are 1-based as a spreadsheet shows them.
func parseRows(rows [][]string, cfg config) (hmeasure.BinaryClassScores, error) {
	var out hmeasure.BinaryClassScores

	start := 0
	if cfg.header {
		if len(rows) == 0 {
			return out, fmt.Errorf("%w: table is empty", ErrNoScores)
		}
		width := len(rows[0])
		if cfg.class0Col >= width || cfg.class1Col >= width {
			return out, fmt.Errorf("%w: header has %d columns, want columns %d and %d",
				ErrMissingColumn, width, cfg.class0Col, cfg.class1Col)
		}
		start = 1
	} else {
		// Trailing blank cells may be dropped, so only the widest row
		// shows whether a column exists at all.
		width := 0
		for _, row := range rows {
			width = max(width, len(row))
		}
		if len(rows) > 0 && (cfg.class0Col >= width || cfg.class1Col >= width) {
			return out, fmt.Errorf("%w: widest row has %d columns, want columns %d and %d",
				ErrMissingColumn, width, cfg.class0Col, cfg.class1Col)
		}
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		v0, ok0, err := parseCell(row, i, cfg.class0Col)
		if err != nil {
			return hmeasure.BinaryClassScores{}, err
		}
		v1, ok1, err := parseCell(row, i, cfg.class1Col)
		if err != nil {
			return hmeasure.BinaryClassScores{}, err
		}
		if ok0 {
			out.Class0 = append(out.Class0, v0)
		}
		if ok1 {
			out.Class1 = append(out.Class1, v1)
		}
	}

	if len(out.Class0) == 0 {
		return out, fmt.Errorf("%w 0", ErrNoScores)
	}
	if len(out.Class1) == 0 {
		return out, fmt.Errorf("%w 1", ErrNoScores)
	}

	log.Trace().Int("rows", len(rows)).Int("class0", len(out.Class0)).Int("class1", len(out.Class1)).Msg("parsed score table")
	return out, nil
}

// parseCell reads one score. Short rows, blank cells and NaN count as missing.
func parseCell(row []string, i, col int) (float64, bool, error) {
	if col >= len(row) {
		return 0, false, nil
	}
	cell := strings.TrimSpace(row[col])
	if cell == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w at row %d column %d: %q", ErrMalformedCell, i+1, col+1, cell)
	}
	if math.IsNaN(v) {
		return 0, false, nil
	}
	return v, true, nil
}
