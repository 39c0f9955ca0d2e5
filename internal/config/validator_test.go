package config

import (
	"testing"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *GlobalConfig)
		wantErr   bool
		wantField string
	}{
		{"defaults", func(cfg *GlobalConfig) {}, false, ""},
		{"zero max files", func(cfg *GlobalConfig) { cfg.ScanConfig.MaxFiles = 0 }, true, "MaxFiles"},
		{"negative depth", func(cfg *GlobalConfig) { cfg.ScanConfig.MaxDepth = -3 }, true, "MaxDepth"},
		{"extension without dot", func(cfg *GlobalConfig) { cfg.ScanConfig.FileExtensions = []string{"php"} }, true, "FileExtensions[0]"},
		{"no extensions", func(cfg *GlobalConfig) { cfg.ScanConfig.FileExtensions = nil }, true, "FileExtensions"},
		{"bad log level", func(cfg *GlobalConfig) { cfg.LogConfig.LogLevel = "verbose" }, true, "LogLevel"},
		{"bad log format", func(cfg *GlobalConfig) { cfg.LogConfig.LogFormat = "xml" }, true, "LogFormat"},
		{"bad report format", func(cfg *GlobalConfig) { cfg.ReporterConfig.Format = "csv" }, true, "Format"},
		{"bad codec", func(cfg *GlobalConfig) { cfg.ReporterConfig.CompressionCodec = "lzma" }, true, "CompressionCodec"},
		{"yaml report", func(cfg *GlobalConfig) { cfg.ReporterConfig.Format = "yaml" }, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfiguration)
			var cfgErr *common.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}

func TestValidateConfig_MultipleErrors(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.ScanConfig.MaxFiles = 0
	cfg.ScanConfig.MaxDepth = 0

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple errors occurred")
	assert.Contains(t, err.Error(), "MaxFiles")
	assert.Contains(t, err.Error(), "MaxDepth")
}
