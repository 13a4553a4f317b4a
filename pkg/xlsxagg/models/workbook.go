package models

// SourceRecord identifies one cataloged source workbook.
type SourceRecord struct {
	// OrderKey is the integer embedded in the file name (x=<key>.xlsx).
	OrderKey int `json:"order_key"`
	// Path is the full path to the workbook.
	Path string `json:"path"`
}

// SkippedFile records a directory entry left out of the catalog.
type SkippedFile struct {
	// Name is the file name without directory.
	Name string `json:"name"`
	// Reason describes why the name was rejected.
	Reason string `json:"reason"`
}

// Catalog is the ordered set of source workbooks found in one directory.
type Catalog struct {
	// Dir is the directory that was scanned.
	Dir string `json:"dir"`
	// Records is sorted ascending by OrderKey; equal keys keep listing order.
	Records []SourceRecord `json:"records"`
	// Skipped lists .xlsx files whose names carried no order key.
	Skipped []SkippedFile `json:"skipped,omitempty"`
}
