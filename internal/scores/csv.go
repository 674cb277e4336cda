package scores

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// LoadCSV reads a score table from a CSV file.
func LoadCSV(path string, opts ...Option) (hmeasure.BinaryClassScores, error) {
	f, err := os.Open(path)
	if err != nil {
		return hmeasure.BinaryClassScores{}, fmt.Errorf("open score file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, opts...)
}

// ReadCSV reads a score table from CSV text.
func ReadCSV(r io.Reader, opts ...Option) (hmeasure.BinaryClassScores, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return hmeasure.BinaryClassScores{}, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return hmeasure.BinaryClassScores{}, fmt.Errorf("read csv: %w", err)
	}
	return parseRows(rows, cfg)
}

// WriteCSV writes scores in the indexed two-column layout. The shorter class
// leaves its trailing cells blank.
func WriteCSV(w io.Writer, scores hmeasure.BinaryClassScores) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"", Class0Header, Class1Header}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range tableRows(scores) {
		record := []string{strconv.Itoa(i), formatCell(row[0]), formatCell(row[1])}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes scores to a CSV file, replacing it if present.
func SaveCSV(path string, scores hmeasure.BinaryClassScores) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create score file: %w", err)
	}
	if err := WriteCSV(f, scores); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// tableRows pairs the classes row by row; a missing value is nil.
func tableRows(scores hmeasure.BinaryClassScores) [][2]*float64 {
	n := max(len(scores.Class0), len(scores.Class1))
	rows := make([][2]*float64, n)
	for i := range rows {
		if i < len(scores.Class0) {
			rows[i][0] = &scores.Class0[i]
		}
		if i < len(scores.Class1) {
			rows[i][1] = &scores.Class1[i]
		}
	}
	return rows
}

func formatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
