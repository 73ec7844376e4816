package edakit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/ukaji3/edakit-go/pkg/edakit/output"
	"go.uber.org/zap"
)

// ChartFile represents one written chart.
type ChartFile struct {
	// Value is the partition-key value the chart was built from.
	Value string
	// Path is the written file path.
	Path string
}

// Exporter writes one hierarchical chart per partition of the first category column.
type Exporter struct {
	// Fs is the filesystem charts are written to.
	Fs afero.Fs
	// Out receives one confirmation line per written file. Nil discards them.
	Out io.Writer
	// Logger receives diagnostics. Nil disables logging.
	Logger *zap.Logger
	// Format selects the chart file format. Empty means FormatHTML.
	Format Format
}

// NewExporter creates an exporter writing HTML charts to the OS filesystem
// and confirmations to stdout.
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{
		Fs:     afero.NewOsFs(),
		Out:    os.Stdout,
		Logger: logger,
		Format: FormatHTML,
	}
}

// ExportSunburst writes HTML sunburst charts for t into dir using the OS filesystem.
func ExportSunburst(t *models.Table, columns []string, dir string) ([]ChartFile, error) {
	return NewExporter(nil).Export(t, columns, dir)
}

// Export partitions t by columns[0] and writes one chart per partition into dir,
// nesting columns from outer to inner ring. An empty dir means DefaultOutputDir.
//
// Column validation happens before any filesystem access. Charts written before a
// failure remain on disk. Two values with the same SafeName share a file name and
// the later partition overwrites the earlier one.
func (e *Exporter) Export(t *models.Table, columns []string, dir string) ([]ChartFile, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	fsys := e.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	format := e.Format
	if format == "" {
		format = FormatHTML
	}
	if !format.valid() {
		return nil, fmt.Errorf("%w: chart format %q", ErrUnsupportedFormat, format)
	}
	if dir == "" {
		dir = DefaultOutputDir
	}

	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if err := RequireColumns(t, columns); err != nil {
		return nil, err
	}

	work, err := Normalize(t)
	if err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, NewExportError("mkdir", "", dir, err)
	}

	parts, err := PartitionBy(work, columns[0])
	if err != nil {
		return nil, err
	}

	var written []ChartFile
	bySafeName := make(map[string]string, len(parts))
	for _, part := range parts {
		chart, err := BuildSunburst(part.Table, columns, chartTitle(columns[0], part.Value))
		if err != nil {
			return written, err
		}

		safe := SafeName(part.Value)
		if prev, ok := bySafeName[safe]; ok {
			logger.Warn("chart file name collision, overwriting earlier chart",
				zap.String("file_name", safe),
				zap.String("previous", prev),
				zap.String("value", part.Value),
			)
		}
		bySafeName[safe] = part.Value

		path := filepath.Join(dir, ChartFileName(part.Value, format))
		if err := writeChart(fsys, path, chart, format); err != nil {
			err.Value = part.Value
			return written, err
		}

		logger.Debug("chart written",
			zap.String("value", part.Value),
			zap.String("path", path),
			zap.Int("rows", chart.Total),
		)
		fmt.Fprintf(out, "Saved sunburst chart for %q to %s\n", part.Value, path)
		written = append(written, ChartFile{Value: part.Value, Path: path})
	}

	return written, nil
}

func writeChart(fsys afero.Fs, path string, chart *models.SunburstChart, format Format) *ExportError {
	f, err := fsys.Create(path)
	if err != nil {
		return NewExportError("create", "", path, err)
	}

	switch format {
	case FormatJSON:
		err = output.WriteSunburstJSON(f, chart)
	case FormatECharts:
		err = output.WriteSunburstOption(f, chart)
	default:
		err = output.WriteSunburstHTML(f, chart)
	}
	if err != nil {
		f.Close()
		return NewExportError("render", "", path, err)
	}

	if err := f.Close(); err != nil {
		return NewExportError("close", "", path, err)
	}
	return nil
}

func chartTitle(column, value string) string {
	return fmt.Sprintf("%s = %s", column, value)
}

// ChartFileName returns the chart file name for a partition value.
func ChartFileName(value string, format Format) string {
	return "sunburst_" + SafeName(value) + "." + format.Ext()
}

// SafeName replaces every rune that is not an ASCII letter or digit with '_'.
func SafeName(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// BuildSunburst builds the hierarchical chart for a table, nesting the given
// columns from outer to inner ring. Leaf values count rows; inner values sum their children.
// Blank category values are labeled UnknownValue.
func BuildSunburst(t *models.Table, path []string, title string) (*models.SunburstChart, error) {
	if len(path) == 0 {
		return nil, ErrNoColumns
	}

	idx := make([]int, len(path))
	for i, c := range path {
		idx[i] = t.ColumnIndex(c)
		if idx[i] < 0 {
			return nil, &ColumnError{Column: c, Table: t.Name}
		}
	}

	chart := &models.SunburstChart{
		Title:      title,
		Path:       append([]string(nil), path...),
		LabelsOnly: true,
	}

	root := &models.SunburstNode{}
	children := make(map[*models.SunburstNode]map[string]*models.SunburstNode)
	for _, row := range t.Rows {
		node := root
		node.Value++
		for level, col := range idx {
			label := categoryLabel(row.Value(col))
			if level == 0 && chart.Partition == "" {
				chart.Partition = label
			}
			next, ok := children[node][label]
			if !ok {
				next = &models.SunburstNode{Name: label, Level: path[level]}
				node.Children = append(node.Children, next)
				if children[node] == nil {
					children[node] = make(map[string]*models.SunburstNode)
				}
				children[node][label] = next
			}
			next.Value++
			node = next
		}
	}

	chart.Total = root.Value
	chart.Roots = root.Children
	return chart, nil
}

func categoryLabel(v interface{}) string {
	if IsBlank(v) {
		return UnknownValue
	}
	return models.FormatValue(v)
}
