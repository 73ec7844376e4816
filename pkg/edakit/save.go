package edakit

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/ukaji3/edakit-go/pkg/edakit/output"
)

// Save writes a table to path, choosing CSV, XLSX or JSON by extension.
// Missing parent directories are created.
func Save(fsys afero.Fs, t *models.Table, path string) error {
	write, err := tableWriter(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// SaveMissingChart writes the missing-value chart PNG to path.
// It returns output.ErrNothingToPlot when no column has missing values.
func SaveMissingChart(fsys afero.Fs, stats []models.MissingStat, path string) error {
	if len(stats) == 0 {
		return output.ErrNothingToPlot
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := output.WriteMissingChart(f, stats); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func tableWriter(path string) (func(io.Writer, *models.Table) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return output.WriteCSV, nil
	case ".xlsx":
		return output.WriteXLSX, nil
	case ".json":
		return output.WriteTableJSON, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
