package config

// ScanConfig defines the bounds and file selection of a scan
type ScanConfig struct {
	Root             string   `json:"root,omitempty" yaml:"root,omitempty"`
	MaxFiles         int      `json:"max_files,omitempty" yaml:"max_files,omitempty" validate:"min=1"`
	MaxDepth         int      `json:"max_depth,omitempty" yaml:"max_depth,omitempty" validate:"min=1"`
	MaxFileBytes     int64    `json:"max_file_bytes,omitempty" yaml:"max_file_bytes,omitempty" validate:"min=1"`
	FileExtensions   []string `json:"file_extensions,omitempty" yaml:"file_extensions,omitempty" validate:"min=1,dive,extension"`
	RespectGitignore bool     `json:"respect_gitignore,omitempty" yaml:"respect_gitignore,omitempty"`
}

// NewDefaultScanConfig creates default scan configuration
func NewDefaultScanConfig() ScanConfig {
	return ScanConfig{
		MaxFiles:       DefaultScanMaxFiles,
		MaxDepth:       DefaultScanMaxDepth,
		MaxFileBytes:   DefaultScanMaxFileBytes,
		FileExtensions: []string{DefaultScanFileExtension},
	}
}

// ApplyDefaults replaces non-positive bounds with the defaults, the same way
// the command line treats a missing or invalid limit.
func (sc *ScanConfig) ApplyDefaults() {
	if sc.MaxFiles <= 0 {
		sc.MaxFiles = DefaultScanMaxFiles
	}
	if sc.MaxDepth <= 0 {
		sc.MaxDepth = DefaultScanMaxDepth
	}
	if sc.MaxFileBytes <= 0 {
		sc.MaxFileBytes = DefaultScanMaxFileBytes
	}
	if len(sc.FileExtensions) == 0 {
		sc.FileExtensions = []string{DefaultScanFileExtension}
	}
}
