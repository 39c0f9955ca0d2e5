// Package report assembles scan results into a ScanReport.
package report

import "github.com/aleister1102/secinspect/internal/models"

const (
	ToolName    = "security_inspect"
	ToolVersion = "0.1.0"
)

// Notes are attached to every report.
var Notes = []string{
	"All findings are heuristics. Validate control-flow, handler type, and output context before changing behavior.",
	"This tool does not prove a vulnerability; it highlights common sources of regressions.",
}

// Input is everything the assembler needs. Occurrences are expected in scan
// order: traversal order across files, line order within a file.
type Input struct {
	Root         string
	Stats        models.ScanStats
	Occurrences  []models.Occurrence
	FileFindings []models.FileFinding
}

// Assemble builds the report. It performs no I/O and every list in the
// result is non-nil.
func Assemble(in Input) models.ScanReport {
	findings := models.Findings{
		RequestInput:          []models.Occurrence{},
		DatabaseCalls:         []models.Occurrence{},
		OutputMaybeUnescaped:  []models.Occurrence{},
		EscapeContextMismatch: []models.Occurrence{},
		FileLevel:             []models.FileFinding{},
	}

	for _, o := range in.Occurrences {
		switch models.CategoryForKind(o.Kind) {
		case models.CategoryRequestInput:
			findings.RequestInput = append(findings.RequestInput, o)
		case models.CategoryDatabaseCalls:
			findings.DatabaseCalls = append(findings.DatabaseCalls, o)
		case models.CategoryOutputMaybeUnescaped:
			findings.OutputMaybeUnescaped = append(findings.OutputMaybeUnescaped, o)
		case models.CategoryEscapeContextMismatch:
			findings.EscapeContextMismatch = append(findings.EscapeContextMismatch, o)
		}
	}
	findings.FileLevel = append(findings.FileLevel, in.FileFindings...)

	notes := make([]string, len(Notes))
	copy(notes, Notes)

	return models.ScanReport{
		Tool:     models.ToolInfo{Name: ToolName, Version: ToolVersion},
		Root:     in.Root,
		Scanned:  in.Stats,
		Summary:  Summarize(findings),
		Findings: findings,
		Notes:    notes,
	}
}

// Summarize counts the entries of each category.
func Summarize(f models.Findings) map[string]int {
	summary := make(map[string]int, len(models.OccurrenceCategories)+1)
	for _, category := range models.OccurrenceCategories {
		summary[category] = len(f.Occurrences(category))
	}
	summary[models.CategoryFileLevel] = len(f.FileLevel)
	return summary
}
