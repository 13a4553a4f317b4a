// Package main provides the CLI entry point for xlsxagg.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/config"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/logging"
	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
)

var (
	configPath   string
	sourceDir    string
	templatePath string
	outputName   string
	outputDir    string
	formula      string
	logFile      string
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsxagg",
		Short: "Aggregate numbered measurement workbooks into one spreadsheet",
		Long: `xlsxagg reads fixed cells from every x=<n>.xlsx file in a directory,
copies a template workbook and writes one row per file, ordered by n, together
with a flow-rate coefficient formula and derived sum/ratio formulas.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "xlsxagg.yaml", "Config file path")
	rootCmd.Flags().StringVarP(&sourceDir, "dir", "d", "", "Directory containing x=<n>.xlsx files")
	rootCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template workbook to copy")
	rootCmd.Flags().StringVarP(&outputName, "name", "n", "", "Destination file name without extension")
	rootCmd.Flags().StringVarP(&outputDir, "out-dir", "o", "", "Destination directory")
	rootCmd.Flags().StringVarP(&formula, "formula", "f", "", "Coefficient formula: 1 (2 L/min), 2 (5 L/min), 3 (8 L/min)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file (appended)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newFormulasCmd(), newInitConfigCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger, err := logging.New(logging.Options{
		File:    cfg.Logging.File,
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := xlsxagg.DefaultOptions()
	opts.Logger = logger

	result, err := xlsxagg.Run(cfg, opts)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	printSummary(cmd, result)
	return nil
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.SourceDir = sourceDir
	}
	if flags.Changed("template") {
		cfg.TemplatePath = templatePath
	}
	if flags.Changed("name") {
		cfg.OutputName = outputName
	}
	if flags.Changed("out-dir") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("formula") {
		cfg.Formula = formula
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = logFile
	}
}

func printSummary(cmd *cobra.Command, result *xlsxagg.Result) {
	out := cmd.OutOrStdout()
	if result.Catalog == nil {
		fmt.Fprintln(out, "No source directory selected.")
		return
	}
	if result.FormulaFallback {
		fmt.Fprintf(out, "Invalid formula choice, using formula %s.\n", result.Formula)
	}
	for _, s := range result.Catalog.Skipped {
		fmt.Fprintf(out, "Skipped %s: %s\n", s.Name, s.Reason)
	}
	for _, f := range result.ReadFailures {
		fmt.Fprintf(out, "Could not read %s; its row is left blank.\n", f.Record.Path)
	}
	if result.Destination == "" {
		fmt.Fprintf(out, "No numbered workbooks found in %s.\n", result.Catalog.Dir)
		return
	}
	fmt.Fprintf(out, "Wrote %d rows to %s\n", len(result.Rows), result.Destination)
}

func newFormulasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formulas",
		Short: "List the coefficient formula choices",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range models.FormulaTemplates() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s. %s (flow rate: %d L/min)\n", t, t.Pattern(), t.FlowRate())
			}
		},
	}
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
