// Package writer fills a destination workbook with aggregated rows and their
// coefficient and derived formulas.
package writer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Write opens the existing workbook at path, writes rows into its active sheet
// starting at row 2 and saves it in place. Row 1 is never touched; nil values
// clear their cell. The workbook is flagged to recalculate on open. Any failure
// is a *models.WorkbookWriteError; cells written before a failure are not
// rolled back, and nothing is saved.
func Write(path string, rows []models.ExtractedRow, tmpl models.FormulaTemplate, logger *zap.Logger) ([]models.AggregateRow, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.WorkbookWriteError{Path: path, Stage: "open", Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	inspectDestination(f, sheetName, path, logger)

	rendered := make([]models.AggregateRow, 0, len(rows))
	for i, row := range rows {
		ar := RenderRow(i, row, tmpl)
		if err := writeRow(f, sheetName, ar); err != nil {
			return nil, &models.WorkbookWriteError{Path: path, Stage: "write", Err: err}
		}
		rendered = append(rendered, ar)
	}

	if err := saveWorkbook(f, path, logger); err != nil {
		return nil, err
	}

	logger.Info("destination workbook written",
		zap.String("path", path),
		zap.Int("rows", len(rendered)),
		zap.Stringer("formula", tmpl))
	return rendered, nil
}

// saveWorkbook marks formulas for recalculation and saves f in place.
func saveWorkbook(f *excelize.File, path string, logger *zap.Logger) error {
	fullCalc := true
	err := f.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &fullCalc})
	if err == nil {
		err = f.Save()
	}
	if err != nil {
		logger.Error("failed to save destination workbook", zap.String("path", path), zap.Error(err))
		return &models.WorkbookWriteError{Path: path, Stage: "save", Err: err}
	}
	return nil
}

func inspectDestination(f *excelize.File, sheetName, path string, logger *zap.Logger) {
	layout, err := parser.InspectDestination(f, sheetName)
	if err != nil {
		logger.Warn("could not inspect destination sheet", zap.String("path", path), zap.Error(err))
		return
	}
	if !layout.HasHeader() {
		logger.Warn("destination sheet has no header row", zap.String("path", path), zap.String("sheet", sheetName))
	}
	if layout.HasDataRows() {
		logger.Warn("destination sheet already holds data rows; they will be overwritten",
			zap.String("path", path),
			zap.String("used_range", layout.UsedRange))
	}
}

func writeRow(f *excelize.File, sheetName string, ar models.AggregateRow) error {
	if len(ar.Values) > MaxValues {
		return fmt.Errorf("row %d has %d values, at most %d fit before column AF", ar.Row, len(ar.Values), MaxValues)
	}
	if err := validateRendered(ar.Coefficient, ar.Derived[:], ar.Row); err != nil {
		return err
	}

	if err := setValue(f, sheetName, KeyColumn, ar.Row, ar.OrderKey); err != nil {
		return err
	}
	if err := setFormula(f, sheetName, CoefficientColumn, ar.Row, ar.Coefficient); err != nil {
		return err
	}
	for j, v := range ar.Values {
		if err := setValue(f, sheetName, FirstValueColumn+j, ar.Row, v); err != nil {
			return err
		}
	}
	for j, formula := range ar.Derived {
		if err := setFormula(f, sheetName, FirstDerivedColumn+j, ar.Row, formula); err != nil {
			return err
		}
	}
	return nil
}

// setValue writes v; a nil v clears the cell.
func setValue(f *excelize.File, sheetName string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheetName, cell, v)
}

// setFormula stores formula text; excelize expects it without the leading '='.
// The cell is cleared first so no stale cached result survives.
func setFormula(f *excelize.File, sheetName string, col, row int, formula string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, nil); err != nil {
		return err
	}
	return f.SetCellFormula(sheetName, cell, strings.TrimPrefix(formula, "="))
}
