// Package config loads and validates the aggregation run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/parser"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/writer"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for one aggregation run.
type Config struct {
	// Source directory holding x=<n>.xlsx files
	SourceDir string `yaml:"source_dir"`

	// Template workbook copied to the destination before writing
	TemplatePath string `yaml:"template_path"`

	// Destination file name without extension, and its directory
	OutputName string `yaml:"output_name"`
	OutputDir  string `yaml:"output_dir"`

	// Coefficient variant: "1", "2" or "3"
	Formula string `yaml:"formula"`

	// Cells read from every source workbook, in destination column order.
	// An empty entry leaves its column blank.
	Cells []string `yaml:"cells"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the run log.
type LoggingConfig struct {
	File    string `yaml:"file"`
	Level   string `yaml:"level"` // debug, info, warn, error
	Console bool   `yaml:"console"`
}

// DefaultCells is the measurement cell list used by the standard report layout.
var DefaultCells = []string{
	"B49", "B62", "B76", "B91", "B107", "B125", "B156", "B164", "B193", "B219", "B249", "B283",
	"B482", "B668", "B681", "B709", "B723", "B741", "B758", "B770", "B778", "B800", "B809", "B822",
	"B842", "B863", "B866", "", "B775",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cells := make([]string, len(DefaultCells))
	copy(cells, DefaultCells)
	return &Config{
		OutputDir: ".",
		Formula:   "1",
		Cells:     cells,
		Logging: LoggingConfig{
			File:    "file_processing.log",
			Level:   "info",
			Console: true,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Addresses converts Cells to typed addresses.
func (c *Config) Addresses() []models.CellAddress {
	addrs := make([]models.CellAddress, len(c.Cells))
	for i, cell := range c.Cells {
		addrs[i] = models.CellAddress(cell)
	}
	return addrs
}

// FormulaTemplate resolves Formula. ok is false when the choice was not
// recognised and the first variant was substituted.
func (c *Config) FormulaTemplate() (tmpl models.FormulaTemplate, ok bool) {
	return models.ParseFormulaChoice(c.Formula)
}

// DestinationPath is OutputDir/OutputName.xlsx.
func (c *Config) DestinationPath() string {
	return filepath.Join(c.OutputDir, c.OutputName+parser.WorkbookExt)
}

// Validate checks the fields a run depends on. An empty SourceDir is valid
// and means nothing was selected.
func (c *Config) Validate() error {
	if len(c.Cells) == 0 {
		return &models.ConfigError{Field: "cells", Err: errors.New("no cells configured")}
	}
	if len(c.Cells) > writer.MaxValues {
		return &models.ConfigError{
			Field: "cells",
			Err:   fmt.Errorf("%d cells configured, at most %d fit between columns C and AE", len(c.Cells), writer.MaxValues),
		}
	}
	if err := parser.ValidateAddresses(c.Addresses()); err != nil {
		return &models.ConfigError{Field: "cells", Err: err}
	}
	if c.SourceDir == "" {
		return nil
	}
	if c.TemplatePath == "" {
		return &models.ConfigError{Field: "template_path", Err: errors.New("required")}
	}
	if c.OutputName == "" {
		return &models.ConfigError{Field: "output_name", Err: errors.New("required")}
	}
	return nil
}
