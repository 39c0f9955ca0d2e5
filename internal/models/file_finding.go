package models

// FindingKind identifies a file-level rule.
type FindingKind string

const (
	FindingRequestWithoutNonceCheck FindingKind = "request-without-nonce-check"
	FindingRequestWithoutCapCheck   FindingKind = "request-without-cap-check"
	FindingQueryWithoutPrepare      FindingKind = "query-without-prepare"
)

// FileFinding is a file-level warning derived from FileSignals.
type FileFinding struct {
	File    string      `json:"file" yaml:"file"`
	Kind    FindingKind `json:"kind" yaml:"kind"`
	Message string      `json:"message" yaml:"message"`
}
