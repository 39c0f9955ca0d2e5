// Package inspector runs a complete scan: walk the tree, classify every
// matched file, apply the file rules and assemble the report.
package inspector

import (
	"path/filepath"
	"time"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/aleister1102/secinspect/internal/config"
	"github.com/aleister1102/secinspect/internal/linescan"
	"github.com/aleister1102/secinspect/internal/models"
	"github.com/aleister1102/secinspect/internal/report"
	"github.com/aleister1102/secinspect/internal/rules"
	"github.com/aleister1102/secinspect/internal/walker"
	"github.com/rs/zerolog"
)

// Inspector orchestrates the scan pipeline. It holds no per-scan state, so
// one Inspector can run any number of scans.
type Inspector struct {
	logger     zerolog.Logger
	walker     *walker.Walker
	aggregator *rules.Aggregator
}

// New creates an Inspector.
func New(logger zerolog.Logger) *Inspector {
	moduleLogger := logger.With().Str("module", "Inspector").Logger()
	return &Inspector{
		logger:     moduleLogger,
		walker:     walker.New(logger),
		aggregator: rules.NewAggregator(),
	}
}

// Scan inspects cfg.Root. Non-positive bounds fall back to the defaults.
// The only error is an invalid root; unreadable directories and files are
// skipped and only show up in the debug log.
func (i *Inspector) Scan(cfg config.ScanConfig) (models.ScanReport, error) {
	cfg.ApplyDefaults()

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return models.ScanReport{}, common.NewInvalidRootError(cfg.Root, "cannot resolve path", err)
	}

	opts := walker.Options{MaxFiles: cfg.MaxFiles, MaxDepth: cfg.MaxDepth}
	if cfg.RespectGitignore {
		opts.Ignore = walker.LoadGitignore(root)
	}

	started := time.Now()
	i.logger.Info().Str("root", root).Int("max_files", cfg.MaxFiles).Int("max_depth", cfg.MaxDepth).Msg("Starting scan")

	walked, err := i.walker.Walk(root, walker.ExtensionPredicate(cfg.FileExtensions...), opts)
	if err != nil {
		return models.ScanReport{}, err
	}

	scanner := linescan.NewScanner(cfg.MaxFileBytes, i.logger)
	var occurrences []models.Occurrence
	signals := make(map[string]models.FileSignals, len(walked.Files))
	skipped, truncatedFiles := 0, 0

	for _, path := range walked.Files {
		rel := relativePath(root, path)
		result, ok := scanner.ScanFile(path, rel)
		if !ok {
			skipped++
			continue
		}
		if result.Truncated {
			truncatedFiles++
		}
		occurrences = append(occurrences, result.Occurrences...)

		merged := signals[rel]
		merged.Merge(result.Signals)
		signals[rel] = merged
	}

	rep := report.Assemble(report.Input{
		Root: root,
		Stats: models.ScanStats{
			FilesMatched: len(walked.Files),
			Truncated:    walked.Truncated,
			MaxFiles:     cfg.MaxFiles,
			MaxDepth:     cfg.MaxDepth,
		},
		Occurrences:  occurrences,
		FileFindings: i.aggregator.Aggregate(signals),
	})

	i.logger.Info().
		Int("files_matched", len(walked.Files)).
		Bool("truncated", walked.Truncated).
		Int("files_skipped", skipped).
		Int("files_cut_at_cap", truncatedFiles).
		Int("occurrences", len(occurrences)).
		Int("file_findings", len(rep.Findings.FileLevel)).
		Dur("duration", time.Since(started)).
		Msg("Scan completed")

	return rep, nil
}

func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
