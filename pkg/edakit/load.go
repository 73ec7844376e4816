package edakit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/ukaji3/edakit-go/pkg/edakit/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Load reads a table from a CSV or XLSX file.
func Load(path string, opts LoadOptions) (*models.Table, error) {
	return LoadWithLogger(path, opts, nil)
}

// LoadWithLogger reads a table and logs what was read.
func LoadWithLogger(path string, opts LoadOptions, logger *zap.Logger) (*models.Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	recOpts := parser.RecordOptions{
		Header:        opts.ShouldUseHeaderRow(),
		MissingValues: opts.MissingTokens(),
	}

	var (
		t   *models.Table
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		t, err = loadCSV(path, opts.delimiter(','), recOpts)
	case ".tsv":
		t, err = loadCSV(path, opts.delimiter('\t'), recOpts)
	case ".xlsx", ".xlsm":
		t, err = loadXLSX(path, opts, recOpts, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("table loaded",
		zap.String("path", path),
		zap.String("table", t.Name),
		zap.Int("rows", t.NumRows()),
		zap.Int("columns", len(t.Columns)),
	)
	return t, nil
}

func (o LoadOptions) delimiter(def rune) rune {
	if o.Delimiter != 0 {
		return o.Delimiter
	}
	return def
}

func loadCSV(path string, delimiter rune, recOpts parser.RecordOptions) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := parser.ReadCSV(f, name, delimiter, recOpts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

func loadXLSX(path string, opts LoadOptions, recOpts parser.RecordOptions, logger *zap.Logger) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetName := opts.Sheet
	var area *models.Area
	if opts.Range != "" {
		rangeSheet, a, err := parser.ResolveRange(f, opts.Range)
		if err != nil {
			return nil, &LoadError{Path: path, Sheet: sheetName, Err: err}
		}
		if rangeSheet != "" {
			sheetName = rangeSheet
		}
		area = a
	}
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &LoadError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheetName = sheets[0]
	}

	t, stats, err := parser.ReadSheet(f, sheetName, area, recOpts)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheetName, Err: err}
	}
	if area == nil && stats.Area != nil && !stats.TableLike {
		logger.Warn("sheet data is sparse, loaded bounding box as a table",
			zap.String("sheet", sheetName),
			zap.Int("r1", stats.Area.R1),
			zap.Int("c1", stats.Area.C1),
			zap.Int("r2", stats.Area.R2),
			zap.Int("c2", stats.Area.C2),
		)
	}
	return t, nil
}
