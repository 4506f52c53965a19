package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSeries reads the numeric cells of a column as a sample series.
// Empty and non-numeric cells (headers, notes) are skipped; order follows rows.
func ReadSeries(f *excelize.File, sheetName, column string) ([]float64, error) {
	col, err := excelize.ColumnNameToNumber(strings.ToUpper(column))
	if err != nil {
		return nil, fmt.Errorf("invalid column %q: %w", column, err)
	}

	cols, err := f.GetCols(sheetName)
	if err != nil {
		return nil, err
	}

	data := []float64{}
	if col > len(cols) {
		return data, nil
	}

	for _, cellValue := range cols[col-1] {
		if v, ok := parseNumber(cellValue); ok {
			data = append(data, v)
		}
	}

	return data, nil
}

// ParseSource splits a "Sheet!Col" reference. A bare column selects the
// first sheet of the workbook.
func ParseSource(f *excelize.File, ref string) (sheet, column string, err error) {
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		sheet, column = ref[:i], ref[i+1:]
	} else {
		column = ref
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return "", "", fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	if column == "" {
		return "", "", fmt.Errorf("missing column in source %q", ref)
	}
	return sheet, column, nil
}

// parseNumber attempts to parse a string value as a finite number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f, true
	}
	return 0, false
}
