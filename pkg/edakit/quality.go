package edakit

import (
	"sort"
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// CheckQuality summarizes the structure and quality of a table.
// The table is not modified.
func CheckQuality(t *models.Table, opts QualityOptions) *models.QualityReport {
	r := &models.QualityReport{
		Name:        t.Name,
		Rows:        t.NumRows(),
		ShowInfo:    enabled(opts.ShowInfo),
		ShowMissing: enabled(opts.ShowMissing),
	}

	for _, name := range t.Columns {
		r.Columns = append(r.Columns, columnInfo(name, t.Column(name)))
	}

	if enabled(opts.ShowHead) {
		n := opts.headRows()
		if n > len(t.Rows) {
			n = len(t.Rows)
		}
		r.Head = append([]models.Row(nil), t.Rows[:n]...)
		r.HeadColumns = append([]string(nil), t.Columns...)
	}

	if enabled(opts.ShowDuplicates) {
		n := DuplicateRows(t)
		r.DuplicateRows = &n
	}

	if enabled(opts.ShowValueCounts) {
		r.DuplicateValues = DuplicateValueCounts(t)
	}

	if enabled(opts.ShowNumeric) {
		for i, c := range r.Columns {
			if c.Dtype == "int64" || c.Dtype == "float64" {
				r.Numeric = append(r.Numeric, numericSummary(t.Columns[i], t.Column(t.Columns[i])))
			}
		}
	}

	if enabled(opts.ShowCategories) {
		for i, c := range r.Columns {
			if c.Dtype != "object" || c.NonNull == 0 {
				continue
			}
			r.Categories = append(r.Categories, models.CategoryDistribution{
				Column: c.Name,
				Top:    topValues(t.Column(t.Columns[i]), opts.topValues()),
			})
		}
	}

	return r
}

func columnInfo(name string, values []interface{}) models.ColumnInfo {
	info := models.ColumnInfo{Name: name}
	types := make(map[string]struct{})
	distinct := make(map[string]struct{})
	for _, v := range values {
		types[models.TypeName(v)] = struct{}{}
		if models.IsMissing(v) {
			info.Missing++
			continue
		}
		info.NonNull++
		distinct[valueKey(v)] = struct{}{}
	}
	for typ := range types {
		info.Types = append(info.Types, typ)
	}
	sort.Strings(info.Types)
	info.Distinct = len(distinct)
	info.Dtype = inferDtype(types)
	return info
}

// inferDtype picks the narrowest dtype covering every non-missing value type.
func inferDtype(types map[string]struct{}) string {
	_, hasInt := types["int64"]
	_, hasFloat := types["float64"]
	_, hasBool := types["bool"]
	_, hasString := types["string"]
	_, hasOther := types["object"]

	switch {
	case hasString || hasOther:
		return "object"
	case hasBool && (hasInt || hasFloat):
		return "object"
	case hasBool:
		return "bool"
	case hasFloat:
		return "float64"
	case hasInt:
		return "int64"
	}
	return "object"
}

// valueKey identifies a value by type and text, so 1 and "1" differ.
func valueKey(v interface{}) string {
	return models.TypeName(v) + "\x1f" + models.FormatValue(v)
}

// DuplicateRows counts rows equal to an earlier row; first occurrences are not counted.
func DuplicateRows(t *models.Table) int {
	seen := make(map[string]struct{}, len(t.Rows))
	count := 0
	var b strings.Builder
	for _, row := range t.Rows {
		b.Reset()
		for i := range t.Columns {
			b.WriteString(valueKey(row.Value(i)))
			b.WriteByte('\x1e')
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			count++
			continue
		}
		seen[key] = struct{}{}
	}
	return count
}

// DuplicateValueCounts returns, per column, the number of distinct non-missing
// values occurring more than once, sorted by count descending.
func DuplicateValueCounts(t *models.Table) []models.DuplicateValueCount {
	result := make([]models.DuplicateValueCount, 0, len(t.Columns))
	for _, name := range t.Columns {
		counts := make(map[string]int)
		for _, v := range t.Column(name) {
			if models.IsMissing(v) {
				continue
			}
			counts[valueKey(v)]++
		}
		repeated := 0
		for _, n := range counts {
			if n > 1 {
				repeated++
			}
		}
		result = append(result, models.DuplicateValueCount{Column: name, Count: repeated})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func numericSummary(name string, values []interface{}) models.NumericSummary {
	floats := make([]float64, 0, len(values))
	for _, v := range values {
		switch x := v.(type) {
		case int64:
			floats = append(floats, float64(x))
		case int:
			floats = append(floats, float64(x))
		case float64:
			if !models.IsMissing(x) {
				floats = append(floats, x)
			}
		}
	}

	summary := models.NumericSummary{Column: name, Count: len(floats)}
	if len(floats) == 0 {
		return summary
	}

	s := series.New(floats, series.Float, name)
	summary.Mean = s.Mean()
	summary.Std = s.StdDev()
	summary.Min = s.Min()
	summary.Q25 = s.Quantile(0.25)
	summary.Median = s.Median()
	summary.Q75 = s.Quantile(0.75)
	summary.Max = s.Max()
	return summary
}

func topValues(values []interface{}, n int) []models.ValueCount {
	var order []string
	counts := make(map[string]int)
	for _, v := range values {
		if models.IsMissing(v) {
			continue
		}
		text := models.FormatValue(v)
		if _, ok := counts[text]; !ok {
			order = append(order, text)
		}
		counts[text]++
	}

	top := make([]models.ValueCount, 0, len(order))
	for _, text := range order {
		top = append(top, models.ValueCount{Value: text, Count: counts[text]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
