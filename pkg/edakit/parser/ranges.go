package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/xuri/excelize/v2"
)

// ResolveRange resolves a range reference or a workbook defined name.
// It returns the sheet named by the reference (empty if none) and the area.
func ResolveRange(f *excelize.File, ref string) (string, *models.Area, error) {
	ref = strings.TrimSpace(ref)
	if strings.Contains(ref, ":") {
		return ParseRange(ref)
	}

	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, ref) {
			return ParseRange(dn.RefersTo)
		}
	}
	return "", nil, fmt.Errorf("unknown range or defined name %q", ref)
}

// ParseRange parses a reference string.
// Format: 'SheetName'!$A$1:$D$10, SheetName!A1:D10 or A1:D10
func ParseRange(ref string) (string, *models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area := parseRangeToArea(rangeStr)
	if area == nil {
		return "", nil, fmt.Errorf("invalid range %q", ref)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to an Area.
func parseRangeToArea(rangeStr string) *models.Area {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
