package parser

import (
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectArea returns the bounding box of non-empty cells, or nil if the rows are empty.
func DetectArea(rows [][]string) *models.Area {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}
	return &models.Area{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}
}

// IsTableLike reports whether an area is dense enough to be treated as a table.
func IsTableLike(rows [][]string, area models.Area, params TableDetectionParams) bool {
	totalCells := (area.R2 - area.R1 + 1) * (area.C2 - area.C1 + 1)
	if totalCells <= 0 {
		return false
	}
	nonEmptyCells := countNonEmptyCells(rows, area.R1-1, area.R2-1, area.C1-1, area.C2-1)
	if nonEmptyCells < params.MinNonemptyCells {
		return false
	}
	density := float64(nonEmptyCells) / float64(totalCells)
	return density >= params.DensityMin
}

// SliceArea returns the records inside an area, padded to the area width.
func SliceArea(rows [][]string, area models.Area) [][]string {
	width := area.C2 - area.C1 + 1
	var records [][]string
	for r := area.R1; r <= area.R2; r++ {
		rec := make([]string, width)
		if r-1 < len(rows) {
			row := rows[r-1]
			for c := area.C1; c <= area.C2 && c-1 < len(row); c++ {
				rec[c-area.C1] = row[c-1]
			}
		}
		records = append(records, rec)
	}
	return records
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
