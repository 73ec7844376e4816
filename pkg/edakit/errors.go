package edakit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the file extension has no reader or writer.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrMissingColumn indicates a requested column is not present in the table.
var ErrMissingColumn = errors.New("missing column")

// ErrNoColumns indicates an empty category column list.
var ErrNoColumns = errors.New("at least one category column is required")

// ColumnError represents a lookup of a column absent from a table.
type ColumnError struct {
	Column string
	Table  string
}

func (e *ColumnError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("column %q: %v", e.Column, ErrMissingColumn)
	}
	return fmt.Sprintf("column %q in table %q: %v", e.Column, e.Table, ErrMissingColumn)
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}

// LoadError represents an error while reading a table from a file.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("load %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ExportError represents a filesystem failure while writing charts.
type ExportError struct {
	Op    string // "mkdir", "create", "render", "close"
	Value string // partition value, empty for mkdir
	Path  string
	Err   error
}

func (e *ExportError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("export %s %s (partition %q): %v", e.Op, e.Path, e.Value, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(op, value, path string, err error) *ExportError {
	return &ExportError{
		Op:    op,
		Value: value,
		Path:  path,
		Err:   err,
	}
}
