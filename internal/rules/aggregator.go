// Package rules turns per-file signals into file-level findings.
package rules

import (
	"sort"

	"github.com/aleister1102/secinspect/internal/models"
)

// FileRule is one fixed condition over a file's signals.
type FileRule struct {
	Kind    models.FindingKind
	Message string
	Applies func(s models.FileSignals) bool
}

// DefaultRules are evaluated independently; none suppresses another.
var DefaultRules = []FileRule{
	{
		Kind:    models.FindingRequestWithoutNonceCheck,
		Message: "File reads request input but no nonce verification call was detected (heuristic). Confirm handler type and add check_admin_referer()/check_ajax_referer() as appropriate.",
		Applies: func(s models.FileSignals) bool { return s.HasRequestInput && !s.HasNonceCheck },
	},
	{
		Kind:    models.FindingRequestWithoutCapCheck,
		Message: "File reads request input but no capability check was detected (heuristic). Confirm the authorization model and add current_user_can() gating as appropriate.",
		Applies: func(s models.FileSignals) bool { return s.HasRequestInput && !s.HasCapabilityCheck },
	},
	{
		Kind:    models.FindingQueryWithoutPrepare,
		Message: "File uses $wpdb query methods but no $wpdb->prepare() call was detected. Ensure all dynamic values are safely prepared (or use $wpdb->insert()/update() with formats).",
		Applies: func(s models.FileSignals) bool { return s.HasDatabaseCall && !s.HasPreparedQuery },
	},
}

// Aggregator evaluates file rules.
type Aggregator struct {
	rules []FileRule
}

// NewAggregator creates an Aggregator over DefaultRules.
func NewAggregator() *Aggregator {
	return &Aggregator{rules: DefaultRules}
}

// Evaluate returns the findings for one file, in rule order.
func (a *Aggregator) Evaluate(file string, signals models.FileSignals) []models.FileFinding {
	var findings []models.FileFinding
	for _, rule := range a.rules {
		if rule.Applies(signals) {
			findings = append(findings, models.FileFinding{
				File:    file,
				Kind:    rule.Kind,
				Message: rule.Message,
			})
		}
	}
	return findings
}

// Aggregate evaluates every file. Output is sorted by file path and then
// rule order, so it does not depend on map iteration.
func (a *Aggregator) Aggregate(signals map[string]models.FileSignals) []models.FileFinding {
	files := make([]string, 0, len(signals))
	for file := range signals {
		files = append(files, file)
	}
	sort.Strings(files)

	findings := []models.FileFinding{}
	for _, file := range files {
		findings = append(findings, a.Evaluate(file, signals[file])...)
	}
	return findings
}
