package config

// WatchConfig defines the re-scan behaviour of watch mode
type WatchConfig struct {
	DebounceMillis int `json:"debounce_millis,omitempty" yaml:"debounce_millis,omitempty" validate:"min=0"`
}

// NewDefaultWatchConfig creates default watch configuration
func NewDefaultWatchConfig() WatchConfig {
	return WatchConfig{
		DebounceMillis: DefaultWatchDebounceMillis,
	}
}
