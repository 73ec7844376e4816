package parser

import (
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/xuri/excelize/v2"
)

// SheetStats describes the cells a table was read from.
type SheetStats struct {
	// Area is the cell range read, nil for a sheet without data.
	Area *models.Area
	// TableLike reports whether the area passed the density check.
	TableLike bool
}

// ReadSheet reads a table from a sheet.
// When area is nil the bounding box of non-empty cells is used.
// A sheet without data yields a table with no columns and no rows.
func ReadSheet(f *excelize.File, sheetName string, area *models.Area, opts RecordOptions) (*models.Table, SheetStats, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, SheetStats{}, err
	}

	if area == nil {
		area = DetectArea(rows)
	}
	if area == nil {
		return &models.Table{Name: sheetName}, SheetStats{}, nil
	}

	stats := SheetStats{
		Area:      area,
		TableLike: IsTableLike(rows, *area, DefaultTableParams()),
	}
	return BuildTable(sheetName, SliceArea(rows, *area), opts), stats, nil
}
