package extractor

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/render"
)

// extractSpreadsheet loads the first worksheet and serializes it to a
// column-oriented JSON string, which becomes the "text" for downstream
// stages. The first row supplies the column names; row keys are zero-based
// indices, so structuring and analytics operate on JSON-shaped text for
// spreadsheets.
func extractSpreadsheet(content []byte) (string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract spreadsheet",
			fmt.Errorf("open workbook: %w", err))
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return "", domain.WrapError(domain.ErrExtraction, "extract spreadsheet",
			fmt.Errorf("workbook has no sheets"))
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract spreadsheet",
			fmt.Errorf("read sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return "{}", nil
	}

	headers := rows[0]
	table := domain.NewOutput()
	for col, header := range headers {
		if header == "" {
			header = fmt.Sprintf("column_%d", col)
		}
		column := domain.NewOutput()
		for rowIdx, row := range rows[1:] {
			key := fmt.Sprintf("%d", rowIdx)
			if col < len(row) {
				column.Set(key, row[col])
			} else {
				column.Set(key, nil)
			}
		}
		table.Set(header, column)
	}

	text, err := render.CompactJSON(table)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract spreadsheet", err)
	}
	return text, nil
}
