package config

// ReporterConfig defines how a finished report is serialized
type ReporterConfig struct {
	Format           string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,reportformat"`
	OutputPath       string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	ParquetPath      string `json:"parquet_path,omitempty" yaml:"parquet_path,omitempty"`
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,oneof=zstd snappy gzip none"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format:           DefaultReporterFormat,
		OutputPath:       DefaultReporterOutputPath,
		ParquetPath:      DefaultReporterParquetPath,
		CompressionCodec: DefaultReporterCompressionCodec,
	}
}
