package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/xuri/excelize/v2"
)

// WriteCSV writes a header row and one record per table row.
// Missing values are written as empty fields.
func WriteCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = models.FormatValue(row.Value(i))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table to a single-sheet workbook.
// Missing values are left as empty cells.
func WriteXLSX(w io.Writer, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	if t.Name != "" && t.Name != sheetName {
		if err := f.SetSheetName(sheetName, sheetTitle(t.Name)); err != nil {
			return err
		}
		sheetName = sheetTitle(t.Name)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		values := make([]interface{}, len(t.Columns))
		for j := range values {
			v := row.Value(j)
			if !models.IsMissing(v) {
				values[j] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// sheetTitle trims a name to Excel's 31-character sheet name limit
// and replaces characters Excel rejects.
func sheetTitle(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			runes[i] = '_'
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
