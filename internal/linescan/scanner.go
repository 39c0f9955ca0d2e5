// Package linescan classifies source lines into security-relevant
// occurrences and derives per-file signals.
package linescan

import (
	"github.com/aleister1102/secinspect/internal/common"
	"github.com/aleister1102/secinspect/internal/models"
	"github.com/rs/zerolog"
)

// DefaultMaxFileBytes is the default per-file read cap.
const DefaultMaxFileBytes int64 = 256 * 1024

// FileResult holds everything one file contributed to a scan.
type FileResult struct {
	File        string
	Occurrences []models.Occurrence
	Signals     models.FileSignals
	// Truncated is set when only the first MaxFileBytes of the file were read.
	Truncated bool
}

// Scanner reads files and classifies their lines.
type Scanner struct {
	logger       zerolog.Logger
	fileManager  *common.FileManager
	maxFileBytes int64
}

// NewScanner creates a Scanner reading at most maxFileBytes per file. A
// non-positive cap selects DefaultMaxFileBytes.
func NewScanner(maxFileBytes int64, logger zerolog.Logger) *Scanner {
	if maxFileBytes <= 0 {
		maxFileBytes = DefaultMaxFileBytes
	}
	moduleLogger := logger.With().Str("module", "LineScanner").Logger()
	return &Scanner{
		logger:       moduleLogger,
		fileManager:  common.NewFileManager(moduleLogger),
		maxFileBytes: maxFileBytes,
	}
}

// ScanFile reads path and classifies it, reporting occurrences under relPath.
// ok is false when the file could not be read or decoded; the caller skips it.
func (s *Scanner) ScanFile(path, relPath string) (result FileResult, ok bool) {
	opts := common.DefaultFileReadOptions()
	opts.MaxSize = s.maxFileBytes

	data, truncated, err := s.fileManager.ReadFile(path, opts)
	if err != nil {
		s.logger.Debug().Err(err).Str("file", relPath).Msg("Skipping unreadable file")
		return FileResult{}, false
	}

	content, err := decode(data)
	if err != nil {
		s.logger.Debug().Err(err).Str("file", relPath).Msg("Skipping undecodable file")
		return FileResult{}, false
	}

	result = ScanContent(relPath, content)
	result.Truncated = truncated
	return result, true
}

// ScanContent classifies already decoded file content. File-wide signals
// are substring checks over the whole text; the rest are set line by line.
func ScanContent(relPath, content string) FileResult {
	result := FileResult{
		File: relPath,
		Signals: models.FileSignals{
			HasNonceCheck:      containsAny(content, nonceCheckTokens),
			HasCapabilityCheck: containsAny(content, capabilityCheckTokens),
			HasPreparedQuery:   containsAny(content, preparedQueryTokens),
		},
	}

	for i, line := range splitLines(content) {
		lineNo := i + 1

		if isRequestInput(line) {
			result.Signals.HasRequestInput = true
			result.add(lineNo, models.KindSuperglobal, line)
		}
		if isDatabaseCall(line) {
			result.Signals.HasDatabaseCall = true
			result.add(lineNo, models.KindDatabaseCall, line)
		}
		if isUnescapedOutput(line) {
			result.add(lineNo, models.KindOutput, line)
		}
		if isURLAttrNotURLEscaped(line) {
			result.add(lineNo, models.KindURLAttrNotURLEscaped, line)
		}
	}

	return result
}

func (r *FileResult) add(line int, kind models.OccurrenceKind, text string) {
	r.Occurrences = append(r.Occurrences, models.Occurrence{
		File:    r.File,
		Line:    line,
		Kind:    kind,
		Excerpt: Excerpt(text),
	})
}
