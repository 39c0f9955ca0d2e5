package reporter

import (
	"io"
	"time"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/aleister1102/secinspect/internal/config"
	"github.com/aleister1102/secinspect/internal/models"
	"github.com/rs/zerolog"
)

// ReportWriter delivers a finished report to its configured destinations:
// the output file (or stdout when none is set) and the optional Parquet
// archive.
type ReportWriter struct {
	cfg         config.ReporterConfig
	logger      zerolog.Logger
	fileManager *common.FileManager
	parquetSink *ParquetSink
	now         func() time.Time
}

// NewReportWriter creates a ReportWriter.
func NewReportWriter(cfg config.ReporterConfig, logger zerolog.Logger) *ReportWriter {
	moduleLogger := logger.With().Str("module", "ReportWriter").Logger()
	return &ReportWriter{
		cfg:         cfg,
		logger:      moduleLogger,
		fileManager: common.NewFileManager(moduleLogger),
		parquetSink: NewParquetSink(cfg.CompressionCodec, logger),
		now:         time.Now,
	}
}

// Write serializes report. stdout receives it when no output path is set.
func (rw *ReportWriter) Write(report models.ScanReport, stdout io.Writer) error {
	if rw.cfg.OutputPath == "" {
		if err := Encode(stdout, report, rw.cfg.Format); err != nil {
			return err
		}
	} else {
		buf := common.DefaultBufferPool.Get()
		defer common.DefaultBufferPool.Put(buf)

		if err := Encode(buf, report, rw.cfg.Format); err != nil {
			return err
		}
		if err := rw.fileManager.WriteFile(rw.cfg.OutputPath, buf.Bytes()); err != nil {
			return common.WrapError(err, "failed to write report")
		}
		rw.logger.Info().Str("path", rw.cfg.OutputPath).Str("format", rw.format()).Msg("Report written")
	}

	if rw.cfg.ParquetPath != "" {
		return rw.parquetSink.Store(rw.cfg.ParquetPath, report, rw.now())
	}
	return nil
}

func (rw *ReportWriter) format() string {
	if rw.cfg.Format == "" {
		return FormatJSON
	}
	return rw.cfg.Format
}
