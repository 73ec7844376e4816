package models

import "encoding/json"

// ColumnInfo represents structure information for one column.
type ColumnInfo struct {
	Name     string `json:"name"`
	NonNull  int    `json:"non_null"`
	Dtype    string `json:"dtype"`
	Missing  int    `json:"missing"`
	Distinct int    `json:"distinct"`
	// Types is the sorted set of value types seen in the column.
	Types []string `json:"types"`
}

// DuplicateValueCount represents how many distinct values repeat in a column.
type DuplicateValueCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// NumericSummary represents descriptive statistics for a numeric column.
type NumericSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// MarshalJSON writes NaN and infinite statistics as null.
func (s NumericSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Column string   `json:"column"`
		Count  int      `json:"count"`
		Mean   *float64 `json:"mean"`
		Std    *float64 `json:"std"`
		Min    *float64 `json:"min"`
		Q25    *float64 `json:"q25"`
		Median *float64 `json:"median"`
		Q75    *float64 `json:"q75"`
		Max    *float64 `json:"max"`
	}{
		Column: s.Column,
		Count:  s.Count,
		Mean:   finite(s.Mean),
		Std:    finite(s.Std),
		Min:    finite(s.Min),
		Q25:    finite(s.Q25),
		Median: finite(s.Median),
		Q75:    finite(s.Q75),
		Max:    finite(s.Max),
	})
}

// ValueCount represents the frequency of a single value.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoryDistribution represents the most frequent values of a categorical column.
type CategoryDistribution struct {
	Column string       `json:"column"`
	Top    []ValueCount `json:"top"`
}

// QualityReport represents the structure and quality summary of a table.
// Sections that were not requested are left empty.
type QualityReport struct {
	// Name is the table name.
	Name string `json:"name,omitempty"`
	// Rows is the number of data rows.
	Rows int `json:"rows"`
	// Columns contains per-column structure information.
	Columns []ColumnInfo `json:"columns"`
	// ShowInfo marks whether the info section was requested.
	ShowInfo bool `json:"-"`
	// ShowMissing marks whether the missing section was requested.
	ShowMissing bool `json:"-"`
	// Head contains the first rows of the table.
	Head []Row `json:"head,omitempty"`
	// HeadColumns are the column names for Head.
	HeadColumns []string `json:"head_columns,omitempty"`
	// DuplicateRows is the number of rows equal to an earlier row (nil if not requested).
	DuplicateRows *int `json:"duplicate_rows,omitempty"`
	// DuplicateValues is sorted by count, descending.
	DuplicateValues []DuplicateValueCount `json:"duplicate_values,omitempty"`
	// Numeric contains summaries for int64 and float64 columns.
	Numeric []NumericSummary `json:"numeric,omitempty"`
	// Categories contains top values for object columns.
	Categories []CategoryDistribution `json:"categories,omitempty"`
}
