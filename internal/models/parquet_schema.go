package models

// ParquetFindingRow is one row of the findings archive. Occurrences fill
// Line and Excerpt; file-level findings fill Message instead.
type ParquetFindingRow struct {
	File     string  `parquet:"file"`
	Line     *int32  `parquet:"line,optional"`
	Kind     string  `parquet:"kind"`
	Category string  `parquet:"category"`
	Excerpt  *string `parquet:"excerpt,optional"`
	Message  *string `parquet:"message,optional"`
	// ScanTimestamp is shared by every row written for the same report.
	ScanTimestamp int64  `parquet:"scan_timestamp"`
	Root          string `parquet:"root"`
}
