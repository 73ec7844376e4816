package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	table := models.NewTable("t", "name", "note")
	table.AddRow("Alice", "likes, commas")
	table.AddRow("Bob")
	table.AddRow(true, 2.25)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))
	assert.Equal(t, "name,note\nAlice,\"likes, commas\"\nBob,\ntrue,2.25\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	table := models.NewTable("Q1/Q2 [draft]", "name", "count")
	table.AddRow("Alice", int64(3))
	table.AddRow(nil, int64(4))

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Q1_Q2 _draft_"}, f.GetSheetList())
	rows, err := f.GetRows("Q1_Q2 _draft_")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "count"}, rows[0])
	assert.Equal(t, []string{"Alice", "3"}, rows[1])
	assert.Equal(t, "4", rows[2][1])
}

func TestSheetTitle(t *testing.T) {
	assert.Equal(t, "Sheet1", sheetTitle("Sheet1"))
	assert.Equal(t, "a_b_c", sheetTitle("a:b*c"))
	assert.Equal(t, strings.Repeat("x", 31), sheetTitle(strings.Repeat("x", 40)))
}
