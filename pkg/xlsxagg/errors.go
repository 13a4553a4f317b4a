package xlsxagg

import "github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"

// Sentinels for errors.Is checks against errors returned by Run.
var (
	ErrDirectoryAccess = models.ErrDirectoryAccess
	ErrFileNameParse   = models.ErrFileNameParse
	ErrCellRead        = models.ErrCellRead
	ErrWorkbookWrite   = models.ErrWorkbookWrite
	ErrTemplateCopy    = models.ErrTemplateCopy
	ErrInvalidConfig   = models.ErrInvalidConfig
)

// Error types, usable with errors.As.
type (
	DirectoryAccessError = models.DirectoryAccessError
	FileNameParseError   = models.FileNameParseError
	CellReadError        = models.CellReadError
	WorkbookWriteError   = models.WorkbookWriteError
	CopyError            = models.CopyError
	ConfigError          = models.ConfigError
)
