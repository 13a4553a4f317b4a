package models

// DerivedFormulaCount is the number of fixed derived formula columns per row.
const DerivedFormulaCount = 13

// AggregateRow is one fully rendered destination row.
type AggregateRow struct {
	// Row is the 1-based destination row number.
	Row int `json:"row"`
	// OrderKey is written to column A.
	OrderKey int `json:"order_key"`
	// Coefficient is the rendered coefficient formula written to column B.
	Coefficient string `json:"coefficient"`
	// Values are written from column C onward.
	Values []any `json:"values"`
	// Derived holds the formulas written to AG..AS.
	Derived [DerivedFormulaCount]string `json:"derived"`
}

// DestinationLayout summarizes what a destination sheet already holds.
type DestinationLayout struct {
	// Sheet is the name of the active sheet.
	Sheet string `json:"sheet"`
	// HeaderCells is the number of non-empty cells in row 1.
	HeaderCells int `json:"header_cells"`
	// LastRow is the last row (1-based) with any data, 0 for an empty sheet.
	LastRow int `json:"last_row"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:AS1").
	UsedRange string `json:"used_range,omitempty"`
}

// HasHeader reports whether row 1 carries at least one header cell.
func (l DestinationLayout) HasHeader() bool {
	return l.HeaderCells > 0
}

// HasDataRows reports whether rows below the header already hold values.
func (l DestinationLayout) HasDataRows() bool {
	return l.LastRow > 1
}
