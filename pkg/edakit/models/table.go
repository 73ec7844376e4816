// Package models defines data structures for tables, reports and charts.
package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Row represents a single data row of a table.
type Row struct {
	// R is the source row index (1-based, header excluded).
	R int `json:"r"`
	// Values holds one value per column. A nil entry is a missing value.
	// Values may be shorter than the table's column list.
	Values []interface{} `json:"values"`
}

// Table represents a named collection of columns with positional rows.
type Table struct {
	// Name is the table name (sheet name or file base name).
	Name string `json:"name,omitempty"`
	// Columns lists the unique column names in order.
	Columns []string `json:"columns"`
	// Rows contains the data rows.
	Rows []Row `json:"rows"`
}

// NewTable creates an empty table with the given columns.
func NewTable(name string, columns ...string) *Table {
	return &Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
	}
}

// AddRow appends a row of values. R is assigned sequentially.
func (t *Table) AddRow(values ...interface{}) {
	t.Rows = append(t.Rows, Row{
		R:      len(t.Rows) + 1,
		Values: values,
	})
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Value returns the value at the given row and column position.
// Cells past the end of a short row are missing.
func (r Row) Value(col int) interface{} {
	if col < 0 || col >= len(r.Values) {
		return nil
	}
	return r.Values[col]
}

// MarshalJSON writes NaN and infinite values as null.
func (r Row) MarshalJSON() ([]byte, error) {
	values := make([]interface{}, len(r.Values))
	for i, v := range r.Values {
		if f, ok := v.(float64); ok && finite(f) == nil {
			continue
		}
		values[i] = v
	}
	return json.Marshal(struct {
		R      int           `json:"r"`
		Values []interface{} `json:"values"`
	}{R: r.R, Values: values})
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Column returns all values of a column, or nil if the column is absent.
func (t *Table) Column(name string) []interface{} {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.Value(idx)
	}
	return values
}

// IsMissing reports whether v is a missing value (nil or NaN).
func IsMissing(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	}
	return false
}

// FormatValue returns the canonical text for a cell value.
// Missing values format as the empty string.
func FormatValue(v interface{}) string {
	if IsMissing(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

// TypeName returns the value type label used in reports.
func TypeName(v interface{}) string {
	if IsMissing(v) {
		return "missing"
	}
	switch v.(type) {
	case string:
		return "string"
	case int64, int:
		return "int64"
	case float64:
		return "float64"
	case bool:
		return "bool"
	}
	return "object"
}
