// Package main provides the CLI entry point for edakit-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/edakit-go/pkg/edakit"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"github.com/ukaji3/edakit-go/pkg/edakit/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	sheet      string
	rangeRef   string

	jsonOutput    bool
	pretty        bool
	noInfo        bool
	noHead        bool
	noMissing     bool
	noDuplicates  bool
	noValueCounts bool
	noNumeric     bool
	noCategories  bool

	missingOutput string
	saveOutput    string
	outputDir     string
	categories    []string
	format        string

	cfg    *Config
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "edakit",
		Short: "Exploratory data analysis helpers for CSV and Excel tables",
		Long: `edakit-go loads a table from CSV or XLSX and prints quality summaries,
saves the table, plots missing values, or exports one sunburst chart
per value of a category column.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	addLoadFlags(rootCmd.PersistentFlags())

	checkCmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Print structure and quality summaries of a table",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	checkCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	checkCmd.Flags().BoolVar(&noInfo, "no-info", false, "Skip the info section")
	checkCmd.Flags().BoolVar(&noHead, "no-head", false, "Skip the first rows section")
	checkCmd.Flags().BoolVar(&noMissing, "no-missing", false, "Skip the missing values section")
	checkCmd.Flags().BoolVar(&noDuplicates, "no-duplicates", false, "Skip the duplicate rows section")
	checkCmd.Flags().BoolVar(&noValueCounts, "no-value-counts", false, "Skip the per-column duplicate value counts")
	checkCmd.Flags().BoolVar(&noNumeric, "no-numeric", false, "Skip the numeric summary")
	checkCmd.Flags().BoolVar(&noCategories, "no-categories", false, "Skip the categorical distributions")

	missingCmd := &cobra.Command{
		Use:   "missing [input]",
		Short: "Plot the percentage of missing values per column",
		Args:  cobra.ExactArgs(1),
		RunE:  runMissing,
	}
	missingCmd.Flags().StringVarP(&missingOutput, "output", "o", "missing_percentage.png", "Output PNG path")

	saveCmd := &cobra.Command{
		Use:   "save [input]",
		Short: "Save a table as CSV, XLSX or JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runSave,
	}
	saveCmd.Flags().StringVarP(&saveOutput, "output", "o", "", "Output file path (.csv, .xlsx, .json)")
	_ = saveCmd.MarkFlagRequired("output")

	sunburstCmd := &cobra.Command{
		Use:   "sunburst [input]",
		Short: "Export one sunburst chart per value of the first category column",
		Args:  cobra.ExactArgs(1),
		RunE:  runSunburst,
	}
	sunburstCmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Category columns, outer to inner (repeatable)")
	sunburstCmd.Flags().StringVar(&outputDir, "output-dir", edakit.DefaultOutputDir, "Directory for chart files")
	sunburstCmd.Flags().StringVar(&format, "format", string(edakit.FormatHTML), "Chart format: html, json or echarts")

	rootCmd.AddCommand(checkCmd, missingCmd, saveCmd, sunburstCmd)
	return rootCmd
}

func addLoadFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	fs.StringVar(&sheet, "sheet", "", "Sheet name for XLSX input (default: first sheet)")
	fs.StringVar(&rangeRef, "range", "", "Cell range (A1:D10) or defined name for XLSX input")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = LoadConfig(configPath)
	if err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func loadTable(cmd *cobra.Command, path string) (*models.Table, error) {
	opts := edakit.DefaultLoadOptions()
	opts.Sheet = sheet
	if !cmd.Flags().Changed("sheet") && cfg.Sheet != "" {
		opts.Sheet = cfg.Sheet
	}
	opts.Range = rangeRef
	if cfg.MissingValues != nil {
		opts.MissingValues = cfg.MissingValues
	}

	t, err := edakit.LoadWithLogger(path, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return t, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	t, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}

	opts := edakit.QualityOptions{
		ShowInfo:        boolPtr(!noInfo),
		ShowHead:        boolPtr(!noHead),
		ShowMissing:     boolPtr(!noMissing),
		ShowDuplicates:  boolPtr(!noDuplicates),
		ShowValueCounts: boolPtr(!noValueCounts),
		ShowNumeric:     boolPtr(!noNumeric),
		ShowCategories:  boolPtr(!noCategories),
	}
	report := edakit.CheckQuality(t, opts)

	if jsonOutput {
		data, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return output.WriteQualityReport(cmd.OutOrStdout(), report)
}

func runMissing(cmd *cobra.Command, args []string) error {
	t, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}

	stats := edakit.MissingPercentages(t)
	if len(stats) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No missing values in the dataset.")
		return nil
	}

	if err := edakit.SaveMissingChart(afero.NewOsFs(), stats, missingOutput); err != nil {
		return fmt.Errorf("failed to write missing value chart: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved missing value chart to %s\n", missingOutput)
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	t, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}

	if err := edakit.Save(afero.NewOsFs(), t, saveOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d rows to %s\n", t.NumRows(), saveOutput)
	return nil
}

func runSunburst(cmd *cobra.Command, args []string) error {
	cols := categories
	if !cmd.Flags().Changed("category") {
		cols = cfg.Categories
	}
	dir := outputDir
	if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
		dir = cfg.OutputDir
	}
	chartFormat := format
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		chartFormat = cfg.Format
	}

	t, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}

	exporter := &edakit.Exporter{
		Fs:     afero.NewOsFs(),
		Out:    cmd.OutOrStdout(),
		Logger: logger,
		Format: edakit.Format(chartFormat),
	}
	files, err := exporter.Export(t, cols, dir)
	if err != nil {
		return fmt.Errorf("sunburst export failed: %w", err)
	}
	logger.Info("sunburst export finished", zap.Int("charts", len(files)), zap.String("dir", dir))
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
