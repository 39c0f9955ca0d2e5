package reporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/aleister1102/secinspect/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ParquetSink archives the findings of a report as flat Parquet rows.
type ParquetSink struct {
	logger      zerolog.Logger
	fileManager *common.FileManager
	codec       string
}

// NewParquetSink creates a sink compressing with codec (zstd, snappy, gzip
// or none).
func NewParquetSink(codec string, logger zerolog.Logger) *ParquetSink {
	moduleLogger := logger.With().Str("module", "ParquetSink").Logger()
	return &ParquetSink{
		logger:      moduleLogger,
		fileManager: common.NewFileManager(moduleLogger),
		codec:       codec,
	}
}

// FlattenReport turns the report findings into rows, occurrences first in
// category order, then file-level findings.
func FlattenReport(report models.ScanReport, scannedAt time.Time) []models.ParquetFindingRow {
	ts := scannedAt.UnixMilli()
	rows := make([]models.ParquetFindingRow, 0, countRows(report.Findings))

	for _, category := range models.OccurrenceCategories {
		for _, occ := range report.Findings.Occurrences(category) {
			line := int32(occ.Line)
			excerpt := occ.Excerpt
			rows = append(rows, models.ParquetFindingRow{
				File:          occ.File,
				Line:          &line,
				Kind:          string(occ.Kind),
				Category:      category,
				Excerpt:       &excerpt,
				ScanTimestamp: ts,
				Root:          report.Root,
			})
		}
	}

	for _, finding := range report.Findings.FileLevel {
		message := finding.Message
		rows = append(rows, models.ParquetFindingRow{
			File:          finding.File,
			Kind:          string(finding.Kind),
			Category:      models.CategoryFileLevel,
			Message:       &message,
			ScanTimestamp: ts,
			Root:          report.Root,
		})
	}

	return rows
}

func countRows(f models.Findings) int {
	n := len(f.FileLevel)
	for _, category := range models.OccurrenceCategories {
		n += len(f.Occurrences(category))
	}
	return n
}

// Store writes the report findings to path, replacing any previous archive.
func (ps *ParquetSink) Store(path string, report models.ScanReport, scannedAt time.Time) error {
	rows := FlattenReport(report, scannedAt)

	buf := common.DefaultBufferPool.Get()
	defer common.DefaultBufferPool.Put(buf)

	writer := parquet.NewGenericWriter[models.ParquetFindingRow](buf, ps.compressionOption())
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return common.WrapError(err, "failed to write findings to parquet buffer")
	}
	if err := writer.Close(); err != nil {
		return common.WrapError(err, "failed to close parquet writer")
	}

	if err := ps.fileManager.WriteFile(path, buf.Bytes()); err != nil {
		return common.WrapError(err, "failed to write parquet file: "+path)
	}

	ps.logger.Info().Str("file_path", path).Int("records_written", len(rows)).Msg("Wrote findings to Parquet file")
	return nil
}

func (ps *ParquetSink) compressionOption() parquet.WriterOption {
	switch strings.ToLower(ps.codec) {
	case CodecZstd, "":
		return parquet.Compression(&parquet.Zstd)
	case CodecSnappy:
		return parquet.Compression(&parquet.Snappy)
	case CodecGzip:
		return parquet.Compression(&parquet.Gzip)
	case CodecNone, "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		ps.logger.Warn().Str("codec", ps.codec).Msg("Unsupported compression codec, defaulting to uncompressed")
		return parquet.Compression(&parquet.Uncompressed)
	}
}

// LoadRows reads every row of a findings archive. A missing or empty file
// yields no rows.
func LoadRows(path string) ([]models.ParquetFindingRow, error) {
	osFile, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.ParquetFindingRow{}, nil
		}
		return nil, fmt.Errorf("failed to open findings file '%s': %w", path, err)
	}
	defer osFile.Close()

	stat, err := osFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat findings file '%s': %w", path, err)
	}
	if stat.Size() == 0 {
		return []models.ParquetFindingRow{}, nil
	}

	pqFile, err := parquet.OpenFile(osFile, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file '%s': %w", path, err)
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	rows := []models.ParquetFindingRow{}
	for {
		var row models.ParquetFindingRow
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading row from parquet file '%s': %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
