package logger

import (
	"strings"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/rs/zerolog"
)

// LogLevelParser handles parsing of log levels
type LogLevelParser struct{}

// NewLogLevelParser creates a new log level parser
func NewLogLevelParser() *LogLevelParser {
	return &LogLevelParser{}
}

// ParseLevel parses string log level to zerolog.Level. Empty means info.
func (llp *LogLevelParser) ParseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, common.WrapError(err, "invalid log level")
	}
	return level, nil
}

// LogFormatParser handles parsing of log formats
type LogFormatParser struct{}

// NewLogFormatParser creates a new log format parser
func NewLogFormatParser() *LogFormatParser {
	return &LogFormatParser{}
}

// ParseFormat maps a configured format to a LogFormat. Anything unknown,
// including the empty string, selects the console format.
func (lfp *LogFormatParser) ParseFormat(formatStr string) LogFormat {
	switch format := LogFormat(strings.ToLower(formatStr)); format {
	case FormatJSON, FormatText:
		return format
	default:
		return FormatConsole
	}
}
