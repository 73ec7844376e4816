package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// DefaultMissingValues lists the cell texts loaded as missing values.
var DefaultMissingValues = []string{"", "NA", "N/A", "NaN", "nan", "NULL", "null", "None", "#N/A"}

// RecordOptions configures how raw string records become a table.
type RecordOptions struct {
	// Header uses the first record as column names.
	Header bool
	// MissingValues lists exact cell texts treated as missing.
	MissingValues []string
}

// BuildTable converts raw string records into a table.
// Cell text is parsed as int64, then float64, else kept as a string.
func BuildTable(name string, records [][]string, opts RecordOptions) *models.Table {
	missing := make(map[string]struct{}, len(opts.MissingValues))
	for _, m := range opts.MissingValues {
		missing[m] = struct{}{}
	}

	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	var header []string
	data := records
	if opts.Header && len(records) > 0 {
		header = records[0]
		data = records[1:]
	}

	t := &models.Table{
		Name:    name,
		Columns: columnNames(header, width),
	}

	for rowIdx, rec := range data {
		values := make([]interface{}, len(rec))
		for colIdx, cellValue := range rec {
			if _, ok := missing[cellValue]; ok {
				continue
			}
			values[colIdx] = parseValue(cellValue)
		}
		t.Rows = append(t.Rows, models.Row{
			R:      rowIdx + 1,
			Values: values,
		})
	}

	return t
}

// columnNames returns unique column names for a header of the given width.
// Blank names become column_<n>; repeated names get a .<k> suffix.
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	suffix := make(map[string]int)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		if used[name] {
			base := name
			k := suffix[base]
			for used[name] {
				k++
				name = base + "." + strconv.Itoa(k)
			}
			suffix[base] = k
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
