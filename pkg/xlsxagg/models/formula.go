package models

import (
	"strconv"
	"strings"
)

// FormulaTemplate selects one of the flow-rate coefficient variants for column B.
type FormulaTemplate int

const (
	// FormulaFlow2 is the 2 L/min coefficient variant (choice "1").
	FormulaFlow2 FormulaTemplate = iota + 1
	// FormulaFlow5 is the 5 L/min coefficient variant (choice "2").
	FormulaFlow5
	// FormulaFlow8 is the 8 L/min coefficient variant (choice "3").
	FormulaFlow8
)

// RowPlaceholder is the substitution point inside a template pattern.
const RowPlaceholder = "{row}"

var formulaVariants = map[FormulaTemplate]struct {
	pattern  string
	flowRate int
}{
	FormulaFlow2: {"=1/265.240*A{row}*0.1*1000", 2},
	FormulaFlow5: {"=1/663.139*A{row}*0.1*1000", 5},
	FormulaFlow8: {"=1/1061.038*A{row}*0.1*1000", 8},
}

// FormulaTemplates lists every variant in choice order.
func FormulaTemplates() []FormulaTemplate {
	return []FormulaTemplate{FormulaFlow2, FormulaFlow5, FormulaFlow8}
}

// ParseFormulaChoice maps a user choice ("1", "2" or "3") to a template.
// Any other input yields FormulaFlow2 and ok == false.
func ParseFormulaChoice(choice string) (FormulaTemplate, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return FormulaFlow2, false
	}
	t := FormulaTemplate(n)
	if !t.Valid() {
		return FormulaFlow2, false
	}
	return t, true
}

// Valid reports whether t is one of the known variants.
func (t FormulaTemplate) Valid() bool {
	_, ok := formulaVariants[t]
	return ok
}

// Pattern returns the template text. Unknown values use FormulaFlow2.
func (t FormulaTemplate) Pattern() string {
	if v, ok := formulaVariants[t]; ok {
		return v.pattern
	}
	return formulaVariants[FormulaFlow2].pattern
}

// FlowRate returns the flow rate in L/min the variant was calibrated for.
func (t FormulaTemplate) FlowRate() int {
	if v, ok := formulaVariants[t]; ok {
		return v.flowRate
	}
	return formulaVariants[FormulaFlow2].flowRate
}

// Render substitutes the destination row number into the pattern.
func (t FormulaTemplate) Render(row int) string {
	return strings.ReplaceAll(t.Pattern(), RowPlaceholder, strconv.Itoa(row))
}

// String returns the user-facing choice number.
func (t FormulaTemplate) String() string {
	if !t.Valid() {
		return "1"
	}
	return strconv.Itoa(int(t))
}
