package models

// Finding categories as they appear in the report.
const (
	CategoryRequestInput          = "requestInput"
	CategoryDatabaseCalls         = "databaseCalls"
	CategoryOutputMaybeUnescaped  = "outputMaybeUnescaped"
	CategoryEscapeContextMismatch = "escapeContextMismatch"
	CategoryFileLevel             = "fileLevel"
)

// OccurrenceCategories lists the occurrence categories in report order.
var OccurrenceCategories = []string{
	CategoryRequestInput,
	CategoryDatabaseCalls,
	CategoryOutputMaybeUnescaped,
	CategoryEscapeContextMismatch,
}

// CategoryForKind maps an occurrence kind to its report category.
func CategoryForKind(kind OccurrenceKind) string {
	switch kind {
	case KindSuperglobal:
		return CategoryRequestInput
	case KindDatabaseCall:
		return CategoryDatabaseCalls
	case KindOutput:
		return CategoryOutputMaybeUnescaped
	case KindURLAttrNotURLEscaped:
		return CategoryEscapeContextMismatch
	default:
		return ""
	}
}

// ToolInfo names the producer of a report.
type ToolInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// ScanStats describes how much of the tree was covered.
type ScanStats struct {
	FilesMatched int  `json:"filesMatched" yaml:"filesMatched"`
	Truncated    bool `json:"truncated" yaml:"truncated"`
	MaxFiles     int  `json:"maxFiles" yaml:"maxFiles"`
	MaxDepth     int  `json:"maxDepth" yaml:"maxDepth"`
}

// Findings groups occurrences and file findings by category.
type Findings struct {
	RequestInput          []Occurrence  `json:"requestInput" yaml:"requestInput"`
	DatabaseCalls         []Occurrence  `json:"databaseCalls" yaml:"databaseCalls"`
	OutputMaybeUnescaped  []Occurrence  `json:"outputMaybeUnescaped" yaml:"outputMaybeUnescaped"`
	EscapeContextMismatch []Occurrence  `json:"escapeContextMismatch" yaml:"escapeContextMismatch"`
	FileLevel             []FileFinding `json:"fileLevel" yaml:"fileLevel"`
}

// Occurrences returns the occurrence list for a category, or nil.
func (f *Findings) Occurrences(category string) []Occurrence {
	switch category {
	case CategoryRequestInput:
		return f.RequestInput
	case CategoryDatabaseCalls:
		return f.DatabaseCalls
	case CategoryOutputMaybeUnescaped:
		return f.OutputMaybeUnescaped
	case CategoryEscapeContextMismatch:
		return f.EscapeContextMismatch
	default:
		return nil
	}
}

// ScanReport is the single artifact produced by a scan.
type ScanReport struct {
	Tool     ToolInfo       `json:"tool" yaml:"tool"`
	Root     string         `json:"root" yaml:"root"`
	Scanned  ScanStats      `json:"scanned" yaml:"scanned"`
	Summary  map[string]int `json:"summary" yaml:"summary"`
	Findings Findings       `json:"findings" yaml:"findings"`
	Notes    []string       `json:"notes" yaml:"notes"`
}
