package xlsxagg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/config"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	srcDir   string
	template string
	outDir   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	fx := fixture{
		srcDir:   filepath.Join(root, "src"),
		template: filepath.Join(root, "template.xlsx"),
		outDir:   filepath.Join(root, "out"),
	}
	require.NoError(t, os.Mkdir(fx.srcDir, 0755))
	require.NoError(t, os.Mkdir(fx.outDir, 0755))

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "No."))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Coefficient"))
	require.NoError(t, f.SaveAs(fx.template))
	return fx
}

func (fx fixture) source(t *testing.T, name string, values map[string]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range values {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	require.NoError(t, f.SaveAs(filepath.Join(fx.srcDir, name)))
}

func (fx fixture) config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.SourceDir = fx.srcDir
	cfg.TemplatePath = fx.template
	cfg.OutputDir = fx.outDir
	cfg.OutputName = "summary"
	cfg.Formula = "2"
	cfg.Cells = []string{"B1", "B2", "", "B4"}
	cfg.Logging.File = ""
	return cfg
}

func TestRun(t *testing.T) {
	fx := newFixture(t)
	fx.source(t, "x=3.xlsx", map[string]any{"B1": 30, "B2": "third", "B4": 3.5})
	fx.source(t, "x=1.xlsx", map[string]any{"B1": 10, "B2": "first", "B4": 1.5})
	require.NoError(t, os.WriteFile(filepath.Join(fx.srcDir, "x=2.xlsx"), []byte("corrupt"), 0644))
	fx.source(t, "bad.xlsx", map[string]any{"B1": 999})

	core, logs := observer.New(zap.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	result, err := Run(fx.config(), opts)
	require.NoError(t, err)

	dst := filepath.Join(fx.outDir, "summary.xlsx")
	assert.Equal(t, dst, result.Destination)
	assert.False(t, result.FormulaFallback)
	require.Len(t, result.Rows, 3)
	require.Len(t, result.ReadFailures, 1)
	assert.Equal(t, 2, result.ReadFailures[0].Record.OrderKey)
	assert.ErrorIs(t, result.ReadFailures[0].Err, ErrCellRead)
	require.Len(t, result.Catalog.Skipped, 1)
	assert.Equal(t, "bad.xlsx", result.Catalog.Skipped[0].Name)

	assert.Equal(t, 1, logs.FilterMessage("skipping file without order key").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to read workbook, using empty values").Len())
	assert.Equal(t, 1, logs.FilterMessage("template copied").Len())

	out, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer out.Close()

	get := func(cell string) string {
		v, err := out.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		return v
	}
	formula := func(cell string) string {
		v, err := out.GetCellFormula("Sheet1", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "No.", get("A1"))
	assert.Equal(t, []string{"1", "2", "3"}, []string{get("A2"), get("A3"), get("A4")})

	assert.Equal(t, "1/663.139*A2*0.1*1000", formula("B2"))
	assert.Equal(t, "1/663.139*A3*0.1*1000", formula("B3"))
	assert.Equal(t, "1/663.139*A4*0.1*1000", formula("B4"))

	// Key 1 row.
	assert.Equal(t, "10", get("C2"))
	assert.Equal(t, "first", get("D2"))
	assert.Equal(t, "", get("E2"))
	assert.Equal(t, "1.5", get("F2"))

	// Unreadable key 2 row keeps its key and formulas but no values.
	assert.Equal(t, "", get("C3"))
	assert.Equal(t, "", get("F3"))
	assert.Equal(t, "O3/U3", formula("AG3"))

	assert.Equal(t, "30", get("C4"))
	assert.Equal(t, "third", get("D4"))
	assert.Equal(t, "C4+D4+E4+F4+G4+H4", formula("AS4"))

	for _, row := range []string{"2", "3", "4", "5"} {
		assert.NotEqual(t, "999", get("C"+row))
	}
}

func TestRun_InvalidFormulaFallsBack(t *testing.T) {
	fx := newFixture(t)
	fx.source(t, "x=1.xlsx", map[string]any{"B1": 1})
	cfg := fx.config()
	cfg.Formula = "9"

	core, logs := observer.New(zap.DebugLevel)
	result, err := Run(cfg, Options{Logger: zap.New(core)})
	require.NoError(t, err)
	assert.True(t, result.FormulaFallback)
	assert.Equal(t, "=1/265.240*A2*0.1*1000", result.Rows[0].Coefficient)
	assert.Equal(t, 1, logs.FilterMessage("invalid formula choice, using default").Len())
}

func TestRun_NoDirectorySelected(t *testing.T) {
	cfg := config.DefaultConfig()
	copied := false
	opts := Options{Copy: func(src, dst string) error { copied = true; return nil }}

	result, err := Run(cfg, opts)
	require.NoError(t, err)
	assert.Nil(t, result.Catalog)
	assert.Empty(t, result.Destination)
	assert.False(t, copied)
}

func TestRun_MissingDirectoryAborts(t *testing.T) {
	fx := newFixture(t)
	cfg := fx.config()
	cfg.SourceDir = filepath.Join(fx.srcDir, "absent")
	copied := false
	opts := Options{Copy: func(src, dst string) error { copied = true; return nil }}

	result, err := Run(cfg, opts)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryAccess)

	var dirErr *DirectoryAccessError
	assert.True(t, errors.As(err, &dirErr))
	assert.False(t, copied, "nothing may be copied after a directory failure")
}

func TestRun_EmptyCatalogWritesNothing(t *testing.T) {
	fx := newFixture(t)
	fx.source(t, "bad.xlsx", nil)

	result, err := Run(fx.config(), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Destination)
	assert.Empty(t, result.Catalog.Records)

	_, statErr := os.Stat(filepath.Join(fx.outDir, "summary.xlsx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_CopyFailure(t *testing.T) {
	fx := newFixture(t)
	fx.source(t, "x=1.xlsx", nil)
	cfg := fx.config()
	cfg.TemplatePath = filepath.Join(fx.srcDir, "missing-template.xlsx")

	_, err := Run(cfg, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateCopy)
}

func TestRun_WriteFailure(t *testing.T) {
	fx := newFixture(t)
	fx.source(t, "x=1.xlsx", nil)
	opts := Options{Copy: func(src, dst string) error {
		return os.WriteFile(dst, []byte("not a workbook"), 0644)
	}}

	result, err := Run(fx.config(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkbookWrite)
	assert.Empty(t, result.Destination)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cells = []string{"??"}

	_, err := Run(cfg, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
