package writer

import (
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
)

// Destination column layout (1-based).
const (
	KeyColumn          = 1  // A
	CoefficientColumn  = 2  // B
	FirstValueColumn   = 3  // C
	LastValueColumn    = 31 // AE; AF is left untouched
	FirstDerivedColumn = 33 // AG
	FirstDataRow       = 2
)

// MaxValues is the number of value columns between C and AE.
const MaxValues = LastValueColumn - FirstValueColumn + 1

// DerivedColumn is one fixed formula column. Its formula joins the
// referenced columns of the same row with Op.
type DerivedColumn struct {
	Column string
	Op     string
	Terms  []string
}

// Formula renders the column's formula for a destination row.
func (d DerivedColumn) Formula(row int) string {
	r := strconv.Itoa(row)
	var b strings.Builder
	b.WriteByte('=')
	for i, term := range d.Terms {
		if i > 0 {
			b.WriteString(d.Op)
		}
		b.WriteString(term)
		b.WriteString(r)
	}
	return b.String()
}

func sum(col string, terms ...string) DerivedColumn {
	return DerivedColumn{Column: col, Op: "+", Terms: terms}
}

func ratio(col, num, den string) DerivedColumn {
	return DerivedColumn{Column: col, Op: "/", Terms: []string{num, den}}
}

// DerivedColumns is the formula block written to AG..AS of every data row.
var DerivedColumns = [models.DerivedFormulaCount]DerivedColumn{
	ratio("AG", "O", "U"),
	sum("AH", "P", "Q", "R", "S", "T", "U", "V", "X", "Y", "Z", "AA", "AB"),
	sum("AI", "J", "K", "L", "M", "N"),
	sum("AJ", "U", "X"),
	sum("AK", "P", "Q", "U", "V", "Y", "Z"),
	sum("AL", "X"),
	sum("AM", "T", "AA"),
	sum("AN", "R", "S", "AB"),
	sum("AO", "J", "K", "L", "M", "N"),
	sum("AP", "I"),
	sum("AQ", "W", "AC"),
	sum("AR", "O"),
	sum("AS", "C", "D", "E", "F", "G", "H"),
}

// RowNumber returns the destination row for the i-th (0-based) data row.
func RowNumber(i int) int {
	return FirstDataRow + i
}

// RenderRow builds the destination content for the i-th extracted row.
func RenderRow(i int, row models.ExtractedRow, tmpl models.FormulaTemplate) models.AggregateRow {
	r := RowNumber(i)
	out := models.AggregateRow{
		Row:         r,
		OrderKey:    row.OrderKey,
		Coefficient: tmpl.Render(r),
		Values:      row.Values,
	}
	for j, dc := range DerivedColumns {
		out.Derived[j] = dc.Formula(r)
	}
	return out
}
