package parser

import (
	"fmt"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"github.com/xuri/excelize/v2"
)

// InspectDestination reports the header row and used range of a sheet.
func InspectDestination(f *excelize.File, sheetName string) (models.DestinationLayout, error) {
	layout := models.DestinationLayout{Sheet: sheetName}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return layout, err
	}

	if len(rows) == 0 {
		return layout, nil
	}

	for _, cell := range rows[0] {
		if cell != "" {
			layout.HeaderCells++
		}
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return layout, nil
	}
	layout.LastRow = maxRow + 1

	// Convert to Excel range notation
	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	layout.UsedRange = fmt.Sprintf("%s:%s", startCell, endCell)

	return layout, nil
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
