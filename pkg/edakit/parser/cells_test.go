package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Table starts at B2 to exercise bounds detection
	f.SetCellValue(sheetName, "B2", "CATEGORY_1")
	f.SetCellValue(sheetName, "C2", "Amount")
	f.SetCellValue(sheetName, "B3", "A")
	f.SetCellValue(sheetName, "C3", 100)
	f.SetCellValue(sheetName, "C4", 200.5)
	f.SetCellValue(sheetName, "B5", "B")

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and read
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, stats, err := ReadSheet(f2, sheetName, nil, RecordOptions{Header: true, MissingValues: DefaultMissingValues})
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if stats.Area == nil || *stats.Area != (models.Area{R1: 2, C1: 2, R2: 5, C2: 3}) {
		t.Errorf("Expected area B2:C5, got %+v", stats.Area)
	}
	if !reflect.DeepEqual(table.Columns, []string{"CATEGORY_1", "Amount"}) {
		t.Errorf("Expected columns [CATEGORY_1 Amount], got %v", table.Columns)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}

	if table.Rows[0].Value(0) != "A" {
		t.Errorf("Expected 'A', got %v", table.Rows[0].Value(0))
	}
	if table.Rows[0].Value(1) != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", table.Rows[0].Value(1), table.Rows[0].Value(1))
	}
	if table.Rows[1].Value(0) != nil {
		t.Errorf("Expected missing value, got %v", table.Rows[1].Value(0))
	}
	if table.Rows[1].Value(1) != 200.5 {
		t.Errorf("Expected 200.5, got %v", table.Rows[1].Value(1))
	}
	if table.Rows[2].Value(1) != nil {
		t.Errorf("Expected missing value, got %v", table.Rows[2].Value(1))
	}
}

func TestReadSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	table, stats, err := ReadSheet(f, "Sheet1", nil, RecordOptions{Header: true})
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if stats.Area != nil {
		t.Errorf("Expected no area, got %+v", stats.Area)
	}
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("Expected empty table, got %d columns and %d rows", len(table.Columns), len(table.Rows))
	}
}

func TestBuildTable(t *testing.T) {
	records := [][]string{
		{"name", "", "name"},
		{"a", "1", "NA"},
		{"b"},
	}

	table := BuildTable("t", records, RecordOptions{Header: true, MissingValues: []string{"NA"}})

	expectedCols := []string{"name", "column_2", "name.1"}
	if !reflect.DeepEqual(table.Columns, expectedCols) {
		t.Errorf("columns = %v, expected %v", table.Columns, expectedCols)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].R != 1 || table.Rows[1].R != 2 {
		t.Errorf("Expected row numbers 1 and 2, got %d and %d", table.Rows[0].R, table.Rows[1].R)
	}
	if table.Rows[0].Value(2) != nil {
		t.Errorf("Expected NA to load as missing, got %v", table.Rows[0].Value(2))
	}
	if table.Rows[1].Value(1) != nil {
		t.Errorf("Expected short row to read as missing, got %v", table.Rows[1].Value(1))
	}
}

func TestBuildTableWithoutHeader(t *testing.T) {
	table := BuildTable("t", [][]string{{"x", "y"}, {"z"}}, RecordOptions{})

	if !reflect.DeepEqual(table.Columns, []string{"column_1", "column_2"}) {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.Rows))
	}
}

func TestColumnNames(t *testing.T) {
	tests := []struct {
		header   []string
		width    int
		expected []string
	}{
		{[]string{"a", "b"}, 2, []string{"a", "b"}},
		{[]string{"a"}, 3, []string{"a", "column_2", "column_3"}},
		{[]string{"a", "a", "a"}, 3, []string{"a", "a.1", "a.2"}},
		{[]string{"a", "a.1", "a"}, 3, []string{"a", "a.1", "a.2"}},
		{[]string{" x ", "  "}, 2, []string{"x", "column_2"}},
	}

	for _, tt := range tests {
		result := columnNames(tt.header, tt.width)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("columnNames(%q, %d) = %q, expected %q", tt.header, tt.width, result, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
