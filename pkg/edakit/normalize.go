package edakit

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// UnknownValue replaces blank and missing category values.
const UnknownValue = "unknown"

// IsBlank reports whether v is missing or a string with only whitespace.
func IsBlank(v interface{}) bool {
	if models.IsMissing(v) {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Copy returns a deep copy of a table.
func Copy(t *models.Table) (*models.Table, error) {
	var out models.Table
	if err := deepcopy.Copy(&out, t); err != nil {
		return nil, fmt.Errorf("copy table: %w", err)
	}
	return &out, nil
}

// Normalize returns a copy of t where every blank or missing value is UnknownValue.
// Short rows are padded so every row holds a value for every column.
// The input table is not modified.
func Normalize(t *models.Table) (*models.Table, error) {
	out, err := Copy(t)
	if err != nil {
		return nil, err
	}

	width := len(out.Columns)
	for i := range out.Rows {
		row := &out.Rows[i]
		if len(row.Values) < width {
			padded := make([]interface{}, width)
			copy(padded, row.Values)
			row.Values = padded
		}
		for j, v := range row.Values {
			if IsBlank(v) {
				row.Values[j] = UnknownValue
			}
		}
	}
	return out, nil
}
