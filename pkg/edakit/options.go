// Package edakit provides exploratory data analysis helpers for tabular data.
package edakit

import (
	"github.com/ukaji3/edakit-go/pkg/edakit/parser"
)

// Format represents the chart file format.
type Format string

const (
	// FormatHTML writes an interactive HTML page per chart.
	FormatHTML Format = "html"
	// FormatJSON writes the serialized chart model per chart.
	FormatJSON Format = "json"
	// FormatECharts writes the ECharts option object per chart.
	FormatECharts Format = "echarts"
)

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string {
	if f == FormatECharts {
		return "echarts.json"
	}
	return string(f)
}

func (f Format) valid() bool {
	switch f {
	case FormatHTML, FormatJSON, FormatECharts:
		return true
	}
	return false
}

// DefaultOutputDir is the chart directory used when none is given.
const DefaultOutputDir = "charts"

// LoadOptions configures table loading.
type LoadOptions struct {
	// Sheet is the XLSX sheet name. Empty selects the first sheet.
	Sheet string
	// Range is an A1 range (optionally Sheet!-prefixed) or a defined name.
	// Empty detects the data bounds automatically.
	Range string
	// Delimiter is the CSV field delimiter. Zero selects by extension.
	Delimiter rune
	// MissingValues lists cell texts loaded as missing.
	// If nil, defaults to parser.DefaultMissingValues.
	MissingValues []string
	// HeaderRow specifies whether the first row holds column names.
	// If nil, defaults to true.
	HeaderRow *bool
}

// DefaultLoadOptions returns default load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

// ShouldUseHeaderRow returns whether the first row holds column names.
func (o LoadOptions) ShouldUseHeaderRow() bool {
	if o.HeaderRow != nil {
		return *o.HeaderRow
	}
	return true
}

// MissingTokens returns the cell texts loaded as missing.
func (o LoadOptions) MissingTokens() []string {
	if o.MissingValues != nil {
		return o.MissingValues
	}
	return parser.DefaultMissingValues
}

// QualityOptions selects the sections of a quality report.
// Each nil field defaults to true.
type QualityOptions struct {
	ShowInfo        *bool
	ShowHead        *bool
	ShowMissing     *bool
	ShowDuplicates  *bool
	ShowValueCounts *bool
	ShowNumeric     *bool
	// HeadRows is the number of rows in the head section. Zero means 5.
	HeadRows int
	// ShowCategories adds the top values of each text column.
	ShowCategories *bool
	// TopValues is the number of values per categorical distribution. Zero means 5.
	TopValues int
}

// DefaultQualityOptions returns options with every section enabled.
func DefaultQualityOptions() QualityOptions {
	return QualityOptions{}
}

func enabled(b *bool) bool {
	return b == nil || *b
}

func (o QualityOptions) headRows() int {
	if o.HeadRows > 0 {
		return o.HeadRows
	}
	return 5
}

func (o QualityOptions) topValues() int {
	if o.TopValues > 0 {
		return o.TopValues
	}
	return 5
}
