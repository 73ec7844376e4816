package models

// SunburstNode represents one segment of a hierarchical chart.
type SunburstNode struct {
	// Name is the category value shown as the segment label.
	Name string `json:"name"`
	// Level is the column name this segment belongs to.
	Level string `json:"level"`
	// Value is the number of rows under this segment.
	Value int `json:"value"`
	// Children contains nested segments of the next level, in first-appearance order.
	Children []*SunburstNode `json:"children,omitempty"`
}

// SunburstChart represents a rendered-ready hierarchical chart for one partition.
type SunburstChart struct {
	// Title is the chart title.
	Title string `json:"title"`
	// Path lists the category columns from outer ring to inner ring.
	Path []string `json:"path"`
	// Partition is the raw partition-key value the chart was built from.
	Partition string `json:"partition"`
	// Total is the number of rows in the partition.
	Total int `json:"total"`
	// Roots contains the outermost segments.
	Roots []*SunburstNode `json:"roots"`
	// LabelsOnly hides numeric overlays; segments show their names only.
	LabelsOnly bool `json:"labels_only"`
}

// MissingStat represents the share of missing values in one column.
type MissingStat struct {
	// Column is the column name.
	Column string `json:"column"`
	// Missing is the number of missing entries.
	Missing int `json:"missing"`
	// Percent is the missing share in percent (0-100).
	Percent float64 `json:"percent"`
}
