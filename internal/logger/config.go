package logger

import (
	"github.com/aleister1102/secinspect/internal/config"
	"github.com/rs/zerolog"
)

// LogFormat selects how log lines are encoded. The values are the ones
// accepted by log_config.log_format.
type LogFormat string

const (
	FormatJSON    LogFormat = "json"
	FormatConsole LogFormat = "console"
	FormatText    LogFormat = "text"
)

// LoggerConfig is the resolved logger setup. Logs always go to the console
// writer; a non-empty FilePath adds a rotating file.
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether a rotating log file is configured.
func (c LoggerConfig) FileEnabled() bool {
	return c.FilePath != ""
}

// DefaultLoggerConfig returns the console-only info logger.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		MaxSizeMB:  config.DefaultMaxLogSizeMB,
		MaxBackups: config.DefaultMaxLogBackups,
	}
}
