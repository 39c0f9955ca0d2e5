package config

const (
	// Scan Defaults
	DefaultScanMaxFiles      = 6000
	DefaultScanMaxDepth      = 12
	DefaultScanMaxFileBytes  = 256 * 1024
	DefaultScanFileExtension = ".php"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Reporter Defaults
	DefaultReporterFormat           = "json"
	DefaultReporterOutputPath       = ""
	DefaultReporterParquetPath      = ""
	DefaultReporterCompressionCodec = "zstd"

	// Watch Defaults
	DefaultWatchDebounceMillis = 300

	// ConfigPathEnv overrides the config file search.
	ConfigPathEnv = "SECINSPECT_CONFIG_PATH"
)
