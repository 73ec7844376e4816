package edakit

import (
	"sort"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// MissingPercentages returns the share of missing entries per column.
// Blank strings count as missing. Only columns with missing entries are
// returned, sorted by percentage ascending (ties keep column order).
func MissingPercentages(t *models.Table) []models.MissingStat {
	if t.NumRows() == 0 {
		return nil
	}

	var stats []models.MissingStat
	for i, name := range t.Columns {
		missing := 0
		for _, row := range t.Rows {
			if IsBlank(row.Value(i)) {
				missing++
			}
		}
		if missing == 0 {
			continue
		}
		stats = append(stats, models.MissingStat{
			Column:  name,
			Missing: missing,
			Percent: float64(missing) / float64(t.NumRows()) * 100,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Percent < stats[j].Percent
	})
	return stats
}
