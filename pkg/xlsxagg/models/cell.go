// Package models defines data structures for measurement aggregation.
package models

// CellAddress is an A1-style coordinate in a source sheet.
// The zero value NoCell marks a position that has no source value.
type CellAddress string

// NoCell is the sentinel address meaning "no value at this position".
const NoCell CellAddress = ""

// IsNone reports whether the address is the NoCell sentinel.
func (a CellAddress) IsNone() bool {
	return a == NoCell
}

// ExtractedRow holds the values read from one source workbook.
type ExtractedRow struct {
	// OrderKey is the key parsed from the source file name.
	OrderKey int `json:"order_key"`
	// Values is positionally aligned with the address list used for extraction.
	// A nil entry means the address was NoCell or the cell could not be read.
	Values []any `json:"values"`
}

// EmptyValues returns n nil values.
func EmptyValues(n int) []any {
	return make([]any, n)
}
