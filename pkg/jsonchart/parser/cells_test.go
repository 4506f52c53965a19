package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadSeries(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Revenue")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "A3", 200.5)
	f.SetCellValue(sheetName, "A4", "n/a")
	f.SetCellValue(sheetName, "A6", -3)
	f.SetCellValue(sheetName, "B2", 42)

	tmpFile := filepath.Join(t.TempDir(), "series.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	data, err := ReadSeries(f2, sheetName, "a")
	if err != nil {
		t.Fatalf("ReadSeries failed: %v", err)
	}
	if want := []float64{100, 200.5, -3}; !reflect.DeepEqual(data, want) {
		t.Errorf("Expected %v, got %v", want, data)
	}

	empty, err := ReadSeries(f2, sheetName, "Z")
	if err != nil {
		t.Fatalf("ReadSeries on empty column failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty series, got %v", empty)
	}

	if _, err := ReadSeries(f2, sheetName, "1A"); err == nil {
		t.Errorf("Expected error for invalid column")
	}
}

func TestParseSource(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	tests := []struct {
		ref        string
		wantSheet  string
		wantColumn string
		wantErr    bool
	}{
		{"Data!B", "Data", "B", false},
		{"C", "Sheet1", "C", false},
		{"!D", "Sheet1", "D", false},
		{"Data!", "", "", true},
	}

	for _, tt := range tests {
		sheet, column, err := ParseSource(f, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSource(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if sheet != tt.wantSheet || column != tt.wantColumn {
			t.Errorf("ParseSource(%q) = (%q, %q), expected (%q, %q)",
				tt.ref, sheet, column, tt.wantSheet, tt.wantColumn)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-100", -100, true},
		{" 7 ", 7, true},
		{"hello", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		result, ok := parseNumber(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("parseNumber(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}
