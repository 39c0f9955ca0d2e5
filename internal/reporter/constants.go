package reporter

const (
	// Report formats
	FormatJSON = "json"
	FormatYAML = "yaml"

	// Parquet compression codecs
	CodecZstd   = "zstd"
	CodecSnappy = "snappy"
	CodecGzip   = "gzip"
	CodecNone   = "none"

	jsonIndent = "  "
)
