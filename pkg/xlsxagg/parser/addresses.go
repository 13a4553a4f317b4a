// Package parser reads source workbooks: it catalogs numbered files, extracts
// fixed cells from them and inspects destination sheets.
package parser

import (
	"fmt"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"github.com/xuri/excelize/v2"
)

// ValidateAddresses checks that every non-sentinel address is a valid A1 cell name.
func ValidateAddresses(addrs []models.CellAddress) error {
	for i, addr := range addrs {
		if addr.IsNone() {
			continue
		}
		if _, _, err := excelize.CellNameToCoordinates(string(addr)); err != nil {
			return fmt.Errorf("address %d (%q): %w", i, addr, err)
		}
	}
	return nil
}
