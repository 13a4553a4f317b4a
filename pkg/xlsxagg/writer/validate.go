package writer

import (
	"fmt"
	"strings"

	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
)

// ValidateFormula tokenizes formula and checks that every cell reference in it
// points at the given row.
func ValidateFormula(formula string, row int) error {
	body := strings.TrimPrefix(formula, "=")
	if body == "" {
		return fmt.Errorf("empty formula")
	}

	ps := efp.ExcelParser()
	tokens := ps.Parse(body)
	refs := 0
	for _, tok := range tokens {
		if tok.TType != efp.TokenTypeOperand || tok.TSubType != efp.TokenSubTypeRange {
			continue
		}
		for _, ref := range strings.Split(tok.TValue, ":") {
			_, r, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
			if err != nil {
				return fmt.Errorf("formula %q: bad reference %q: %w", formula, ref, err)
			}
			if r != row {
				return fmt.Errorf("formula %q references row %d, expected %d", formula, r, row)
			}
			refs++
		}
	}
	if refs == 0 {
		return fmt.Errorf("formula %q has no cell references", formula)
	}
	return nil
}

// validateRendered checks the coefficient and every derived formula of rendered row r.
func validateRendered(coefficient string, derived []string, row int) error {
	if err := ValidateFormula(coefficient, row); err != nil {
		return err
	}
	for _, f := range derived {
		if err := ValidateFormula(f, row); err != nil {
			return err
		}
	}
	return nil
}
