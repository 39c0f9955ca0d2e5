package config

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	ScanConfig     ScanConfig     `json:"scan_config,omitempty" yaml:"scan_config,omitempty"`
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig ReporterConfig `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	WatchConfig    WatchConfig    `json:"watch_config,omitempty" yaml:"watch_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ScanConfig:     NewDefaultScanConfig(),
		LogConfig:      NewDefaultLogConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
		WatchConfig:    NewDefaultWatchConfig(),
	}
}
