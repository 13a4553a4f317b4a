// Package xlsxagg aggregates numbered measurement workbooks into one
// consolidated workbook with coefficient and derived formulas.
package xlsxagg

import "go.uber.org/zap"

// CopyFunc creates the destination workbook from the template.
type CopyFunc func(src, dst string) error

// Options configures the collaborators used by Run.
type Options struct {
	// Logger receives one event per caught failure. Nil disables logging.
	Logger *zap.Logger
	// Copy creates the destination from the template. Nil uses CopyFile.
	Copy CopyFunc
}

// DefaultOptions returns options with no logging and file copying via CopyFile.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Copy:   CopyFile,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) copier() CopyFunc {
	if o.Copy != nil {
		return o.Copy
	}
	return CopyFile
}
