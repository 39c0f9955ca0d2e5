package models

// OccurrenceKind identifies the line-level pattern that matched.
type OccurrenceKind string

const (
	KindSuperglobal          OccurrenceKind = "superglobal"
	KindDatabaseCall         OccurrenceKind = "database-call"
	KindOutput               OccurrenceKind = "output"
	KindURLAttrNotURLEscaped OccurrenceKind = "url-attr-not-url-escaped"
)

// Occurrence is one pattern match at one source line.
type Occurrence struct {
	File    string         `json:"file" yaml:"file"`
	Line    int            `json:"line" yaml:"line"`
	Kind    OccurrenceKind `json:"kind" yaml:"kind"`
	Excerpt string         `json:"excerpt" yaml:"excerpt"`
}

// FileSignals are the per-file booleans the rule aggregator works from.
// Flags only ever move from false to true while a file is scanned.
type FileSignals struct {
	HasRequestInput    bool
	HasNonceCheck      bool
	HasCapabilityCheck bool
	HasDatabaseCall    bool
	HasPreparedQuery   bool
}

// Merge ORs other into s.
func (s *FileSignals) Merge(other FileSignals) {
	s.HasRequestInput = s.HasRequestInput || other.HasRequestInput
	s.HasNonceCheck = s.HasNonceCheck || other.HasNonceCheck
	s.HasCapabilityCheck = s.HasCapabilityCheck || other.HasCapabilityCheck
	s.HasDatabaseCall = s.HasDatabaseCall || other.HasDatabaseCall
	s.HasPreparedQuery = s.HasPreparedQuery || other.HasPreparedQuery
}
