package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var errNoActiveSheet = errors.New("workbook has no active sheet")

// ExtractRow reads the given addresses from the active sheet of rec's workbook.
// The returned row always has len(addrs) values. When the workbook cannot be
// opened or a cell cannot be read, every value is nil and the returned error is
// a *models.CellReadError; callers treat it as recoverable.
func ExtractRow(rec models.SourceRecord, addrs []models.CellAddress, logger *zap.Logger) (models.ExtractedRow, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	row := models.ExtractedRow{OrderKey: rec.OrderKey}
	values, err := ExtractValues(rec.Path, addrs)
	if err != nil {
		logger.Error("failed to read workbook, using empty values",
			zap.String("path", rec.Path),
			zap.Int("key", rec.OrderKey),
			zap.Error(err))
		row.Values = models.EmptyValues(len(addrs))
		return row, err
	}

	row.Values = values
	return row, nil
}

// ExtractValues opens path reading cached values only and returns one value per
// address. NoCell addresses yield nil without touching the sheet.
func ExtractValues(path string, addrs []models.CellAddress) ([]any, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &models.CellReadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName == "" {
		return nil, &models.CellReadError{Path: path, Err: errNoActiveSheet}
	}

	values := models.EmptyValues(len(addrs))
	for i, addr := range addrs {
		if addr.IsNone() {
			continue
		}
		v, err := readCell(f, sheetName, string(addr))
		if err != nil {
			return nil, &models.CellReadError{Path: path, Cell: addr, Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// readCell returns the stored value of a cell keeping its kind:
// numbers as int64/float64, booleans as bool, text as string, empty as nil.
func readCell(f *excelize.File, sheetName, cell string) (any, error) {
	raw, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw, nil
	}
	return parseValue(raw), nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
