package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const sectionRule = "------------------------------------"

var sectionStyle = lipgloss.NewStyle().Bold(true)

// WriteQualityReport renders a quality report as text.
// Sections left empty in the report are skipped.
func WriteQualityReport(w io.Writer, r *models.QualityReport) error {
	rw := &reportWriter{w: w, p: message.NewPrinter(language.English)}

	if r.ShowInfo {
		rw.section("DataFrame Info:")
		rw.printf("%s entries, %s columns\n", rw.num(r.Rows), rw.num(len(r.Columns)))
		rows := make([][]string, 0, len(r.Columns))
		for i, c := range r.Columns {
			rows = append(rows, []string{rw.num(i), c.Name, rw.num(c.NonNull) + " non-null", c.Dtype})
		}
		rw.table([]string{"#", "Column", "Non-Null Count", "Dtype"}, rows)
	}

	rw.section("Unique Data Types Per Column:")
	typeRows := make([][]string, 0, len(r.Columns))
	for _, c := range r.Columns {
		typeRows = append(typeRows, []string{c.Name, strings.Join(c.Types, ", ")})
	}
	rw.table([]string{"Column", "Types"}, typeRows)

	if len(r.HeadColumns) > 0 {
		rw.section(fmt.Sprintf("First %d Rows:", len(r.Head)))
		headRows := make([][]string, 0, len(r.Head))
		for _, row := range r.Head {
			cells := make([]string, len(r.HeadColumns))
			for i := range cells {
				v := row.Value(i)
				if models.IsMissing(v) {
					cells[i] = "NaN"
				} else {
					cells[i] = models.FormatValue(v)
				}
			}
			headRows = append(headRows, cells)
		}
		rw.table(r.HeadColumns, headRows)
	}

	if r.ShowMissing {
		rw.section("Missing Values Summary:")
		rows := make([][]string, 0, len(r.Columns))
		for _, c := range r.Columns {
			rows = append(rows, []string{c.Name, rw.num(c.Missing)})
		}
		rw.table([]string{"Column", "Missing"}, rows)
	}

	if r.DuplicateRows != nil {
		rw.section("")
		rw.printf("Total Duplicate Rows: %s\n", rw.num(*r.DuplicateRows))
	}

	if len(r.DuplicateValues) > 0 {
		rw.section("Per-Column Duplicate Value Counts:")
		rows := make([][]string, 0, len(r.DuplicateValues))
		for _, d := range r.DuplicateValues {
			rows = append(rows, []string{d.Column, rw.num(d.Count)})
		}
		rw.table([]string{"Column", "Repeated Values"}, rows)
	}

	if len(r.Numeric) > 0 {
		rw.section("Numeric Column Summary:")
		rows := make([][]string, 0, len(r.Numeric))
		for _, s := range r.Numeric {
			rows = append(rows, []string{
				s.Column, rw.num(s.Count),
				rw.float(s.Mean), rw.float(s.Std), rw.float(s.Min),
				rw.float(s.Q25), rw.float(s.Median), rw.float(s.Q75), rw.float(s.Max),
			})
		}
		rw.table([]string{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}, rows)
	}

	if len(r.Categories) > 0 {
		rw.section("Categorical Column Distributions:")
		for _, d := range r.Categories {
			rows := make([][]string, 0, len(d.Top))
			for _, vc := range d.Top {
				rows = append(rows, []string{vc.Value, rw.num(vc.Count)})
			}
			rw.printf("%s\n", d.Column)
			rw.table([]string{"Value", "Count"}, rows)
		}
	}

	return rw.err
}

// reportWriter keeps the first write error so rendering code stays linear.
type reportWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) section(title string) {
	rw.printf("%s\n", sectionRule)
	if title != "" {
		rw.printf("\n%s\n", sectionStyle.Render(title))
	}
}

func (rw *reportWriter) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	rw.printf("%s\n", t.String())
}

func (rw *reportWriter) num(n int) string {
	return rw.p.Sprintf("%d", n)
}

func (rw *reportWriter) float(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return rw.p.Sprintf("%.4f", f)
}
