package edakit

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/ukaji3/edakit-go/pkg/edakit/output"
)

func saveTable() *models.Table {
	table := models.NewTable("survey", "CATEGORY_1", "score")
	table.AddRow("A", int64(3))
	table.AddRow("B", nil)
	table.AddRow(nil, 1.5)
	return table
}

func TestSaveCSV(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Save(fs, saveTable(), "out/data.csv"))

	data, err := afero.ReadFile(fs, "out/data.csv")
	require.NoError(t, err)
	assert.Equal(t, "CATEGORY_1,score\nA,3\nB,\n,1.5\n", string(data))
}

func TestSaveJSON(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Save(fs, saveTable(), "data.json"))

	data, err := afero.ReadFile(fs, "data.json")
	require.NoError(t, err)

	var decoded models.Table
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "survey", decoded.Name)
	assert.Equal(t, []string{"CATEGORY_1", "score"}, decoded.Columns)
	assert.Len(t, decoded.Rows, 3)
}

func TestSaveUnsupportedFormat(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Save(fs, saveTable(), "out/data.parquet")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	exists, _ := afero.DirExists(fs, "out")
	assert.False(t, exists)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()

	for _, name := range []string{"data.csv", "data.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(fs, saveTable(), path))

			loaded, err := Load(path, DefaultLoadOptions())
			require.NoError(t, err)

			assert.Equal(t, []string{"CATEGORY_1", "score"}, loaded.Columns)
			assert.Equal(t, []interface{}{"A", "B", nil}, loaded.Column("CATEGORY_1"))
			assert.Equal(t, []interface{}{int64(3), nil, 1.5}, loaded.Column("score"))
		})
	}
}

func TestSaveMissingChart(t *testing.T) {
	fs := afero.NewMemMapFs()
	stats := []models.MissingStat{
		{Column: "a", Missing: 1, Percent: 25},
		{Column: "b", Missing: 2, Percent: 50},
	}

	require.NoError(t, SaveMissingChart(fs, stats, "plots/missing.png"))

	data, err := afero.ReadFile(fs, "plots/missing.png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestSaveMissingChartNothingToPlot(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := SaveMissingChart(fs, nil, "missing.png")
	assert.ErrorIs(t, err, output.ErrNothingToPlot)

	exists, _ := afero.Exists(fs, "missing.png")
	assert.False(t, exists)
}
