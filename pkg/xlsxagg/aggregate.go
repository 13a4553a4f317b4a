package xlsxagg

import (
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/config"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/parser"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/writer"
	"go.uber.org/zap"
)

// ReadFailure records a source workbook whose values were replaced by nils.
type ReadFailure struct {
	Record models.SourceRecord
	Err    error
}

// Result summarizes a run. Recoverable problems are listed here rather than
// returned as errors.
type Result struct {
	// Destination is the written workbook, empty when nothing was written.
	Destination string
	// Formula is the coefficient variant used for column B.
	Formula models.FormulaTemplate
	// FormulaFallback is set when the configured choice was invalid.
	FormulaFallback bool
	// Catalog lists the source workbooks and skipped file names.
	Catalog *models.Catalog
	// ReadFailures lists workbooks that could not be read.
	ReadFailures []ReadFailure
	// Rows are the rendered destination rows in sheet order.
	Rows []models.AggregateRow
}

// Run catalogs cfg.SourceDir, copies the template to the destination, extracts
// the configured cells from every source workbook and writes the aggregate.
//
// An empty SourceDir means no directory was selected and Run returns an empty
// Result. Directory, copy and destination failures abort the run; unparseable
// file names and unreadable workbooks are logged and reported in the Result.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	logger := opts.logger()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return nil, err
	}

	result := &Result{}
	if cfg.SourceDir == "" {
		logger.Info("no source directory selected")
		return result, nil
	}

	tmpl, ok := cfg.FormulaTemplate()
	if !ok {
		logger.Warn("invalid formula choice, using default",
			zap.String("choice", cfg.Formula),
			zap.Stringer("formula", tmpl))
	}
	result.Formula = tmpl
	result.FormulaFallback = !ok

	catalog, err := parser.BuildCatalog(cfg.SourceDir, logger)
	if err != nil {
		return nil, err
	}
	result.Catalog = catalog
	if len(catalog.Records) == 0 {
		logger.Warn("no numbered workbooks found", zap.String("dir", cfg.SourceDir))
		return result, nil
	}

	dst := cfg.DestinationPath()
	if err := opts.copier()(cfg.TemplatePath, dst); err != nil {
		logger.Error("failed to copy template", zap.String("src", cfg.TemplatePath), zap.String("dst", dst), zap.Error(err))
		return result, err
	}
	logger.Info("template copied", zap.String("src", cfg.TemplatePath), zap.String("dst", dst))

	addrs := cfg.Addresses()
	rows := make([]models.ExtractedRow, 0, len(catalog.Records))
	for _, rec := range catalog.Records {
		row, err := parser.ExtractRow(rec, addrs, logger)
		if err != nil {
			result.ReadFailures = append(result.ReadFailures, ReadFailure{Record: rec, Err: err})
		}
		rows = append(rows, row)
	}

	written, err := writer.Write(dst, rows, tmpl, logger)
	if err != nil {
		logger.Error("failed to write destination workbook", zap.String("path", dst), zap.Error(err))
		return result, err
	}
	result.Rows = written
	result.Destination = dst

	return result, nil
}
