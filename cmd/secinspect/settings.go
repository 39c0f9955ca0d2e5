package main

import (
	"io"

	"github.com/aleister1102/secinspect/internal/config"
	"github.com/aleister1102/secinspect/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// scanFlags are shared by scan and watch. Flags override config file values
// only when set on the command line.
type scanFlags struct {
	configPath string
	maxFiles   int
	maxDepth   int
	format     string
	output     string
	parquet    string
	logLevel   string
	gitignore  bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML/JSON config file. If not set, searches default locations.")
	flags.IntVar(&f.maxFiles, "max-files", config.DefaultScanMaxFiles, "Stop after visiting this many files")
	flags.IntVar(&f.maxDepth, "max-depth", config.DefaultScanMaxDepth, "Do not descend deeper than this many directories")
	flags.StringVarP(&f.format, "format", "f", config.DefaultReporterFormat, "Report format: json or yaml")
	flags.StringVarP(&f.output, "output", "o", "", "Write the report to this file instead of stdout")
	flags.StringVar(&f.parquet, "parquet", "", "Also archive findings to this Parquet file")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&f.gitignore, "gitignore", false, "Also skip paths matched by the root .gitignore")
}

type settings struct {
	cfg    *config.GlobalConfig
	logger zerolog.Logger
}

// loadSettings resolves the effective configuration for cmd: defaults, then
// the config file, then explicitly set flags, then the positional root.
func loadSettings(cmd *cobra.Command, f *scanFlags, args []string, stderr io.Writer) (*settings, error) {
	cfg, err := config.LoadGlobalConfig(f.configPath, zerolog.Nop())
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("max-files") {
		cfg.ScanConfig.MaxFiles = f.maxFiles
	}
	if changed("max-depth") {
		cfg.ScanConfig.MaxDepth = f.maxDepth
	}
	if changed("gitignore") {
		cfg.ScanConfig.RespectGitignore = f.gitignore
	}
	if changed("format") {
		cfg.ReporterConfig.Format = f.format
	}
	if changed("output") {
		cfg.ReporterConfig.OutputPath = f.output
	}
	if changed("parquet") {
		cfg.ReporterConfig.ParquetPath = f.parquet
	}
	if changed("log-level") {
		cfg.LogConfig.LogLevel = f.logLevel
	}

	if len(args) > 0 {
		cfg.ScanConfig.Root = args[0]
	}
	if cfg.ScanConfig.Root == "" {
		cfg.ScanConfig.Root = "."
	}

	// Non-positive limits fall back to the defaults instead of failing.
	cfg.ScanConfig.ApplyDefaults()

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	built, err := logger.NewLoggerBuilder().WithConfig(cfg.LogConfig).WithConsoleOutput(stderr).Build()
	if err != nil {
		return nil, err
	}

	return &settings{cfg: cfg, logger: *built.GetZerolog()}, nil
}
