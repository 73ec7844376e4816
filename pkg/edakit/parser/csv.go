package parser

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// ReadCSV reads a delimited table. Rows may have differing field counts.
func ReadCSV(r io.Reader, name string, delimiter rune, opts RecordOptions) (*models.Table, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return BuildTable(name, records, opts), nil
}
