package scores

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

const defaultSheet = "Sheet1"

// LoadXLSX reads a score table from an Excel workbook, by default from its
// first worksheet.
func LoadXLSX(path string, opts ...Option) (hmeasure.BinaryClassScores, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return hmeasure.BinaryClassScores{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return hmeasure.BinaryClassScores{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return hmeasure.BinaryClassScores{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return parseRows(rows, cfg)
}

// SaveXLSX writes scores to a workbook in the same layout as WriteCSV.
func SaveXLSX(path string, scores hmeasure.BinaryClassScores) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(defaultSheet, "A1", &[]any{"", Class0Header, Class1Header}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range tableRows(scores) {
		line := i + 2
		if err := f.SetCellValue(defaultSheet, fmt.Sprintf("A%d", line), i); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, line)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(defaultSheet, cell, *v); err != nil {
				return fmt.Errorf("write row %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
