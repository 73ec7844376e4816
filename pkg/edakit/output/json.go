// Package output renders tables, reports and charts to files and writers.
package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// ToJSON serializes a value to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteSunburstJSON writes the chart model as indented JSON.
func WriteSunburstJSON(w io.Writer, chart *models.SunburstChart) error {
	data, err := ToJSON(chart, true)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteTableJSON writes a table as indented JSON.
func WriteTableJSON(w io.Writer, t *models.Table) error {
	data, err := ToJSON(t, true)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
