package common

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize    int64 // Maximum number of bytes returned (0 = no limit); longer files are truncated
	BufferSize int   // Buffer size for reading
}

// DefaultFileReadOptions returns default file reading options
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:    10 * 1024 * 1024,
		BufferSize: 64 * 1024,
	}
}

// FileReader handles bounded file reads
type FileReader struct {
	logger zerolog.Logger
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	return &FileReader{
		logger: logger.With().Str("component", "FileReader").Logger(),
	}
}

// ReadFile reads at most opts.MaxSize bytes of path. The second return value
// reports whether the file was longer than the cap.
func (fr *FileReader) ReadFile(path string, opts FileReadOptions) ([]byte, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fr.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	var reader io.Reader = file
	if opts.BufferSize > 0 {
		reader = bufio.NewReaderSize(file, opts.BufferSize)
	}

	if opts.MaxSize <= 0 {
		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, false, WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
		}
		return content, false, nil
	}

	// One extra byte tells a file of exactly MaxSize apart from a longer one.
	content, err := io.ReadAll(io.LimitReader(reader, opts.MaxSize+1))
	if err != nil {
		return nil, false, WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}
	if int64(len(content)) > opts.MaxSize {
		fr.logger.Debug().Str("path", path).Int64("max_size", opts.MaxSize).Msg("File content truncated")
		return content[:opts.MaxSize], true, nil
	}
	return content, false, nil
}
