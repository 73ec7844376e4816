package edakit

import (
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// Partition represents the rows sharing one value of a key column.
type Partition struct {
	// Value is the key value, formatted as text.
	Value string
	// Table holds the partition rows with the source table's columns.
	Table *models.Table
}

// PartitionBy splits a table by the distinct values of a column.
// Partitions are returned in order of first appearance; each distinct value appears once.
// Values of different types are distinct even when their text matches, so 1 and "1"
// form two partitions with the same Value.
// Rows are shared with t, not copied.
func PartitionBy(t *models.Table, column string) ([]Partition, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, &ColumnError{Column: column, Table: t.Name}
	}

	var parts []Partition
	byValue := make(map[string]int)
	for _, row := range t.Rows {
		v := row.Value(idx)
		key := valueKey(v)
		pos, ok := byValue[key]
		if !ok {
			pos = len(parts)
			byValue[key] = pos
			parts = append(parts, Partition{
				Value: models.FormatValue(v),
				Table: &models.Table{Name: t.Name, Columns: t.Columns},
			})
		}
		parts[pos].Table.Rows = append(parts[pos].Table.Rows, row)
	}
	return parts, nil
}

// RequireColumns checks that every column exists in the table.
func RequireColumns(t *models.Table, columns []string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return &ColumnError{Column: c, Table: t.Name}
		}
	}
	return nil
}
