package model

import "fmt"

// FindingCategory names the aspect of branch health a finding concerns.
type FindingCategory int

const (
	// CategoryRemoteSync covers presence of and agreement with the remote copy.
	CategoryRemoteSync FindingCategory = iota
	// CategoryBaseCurrency covers falling behind the base branch.
	CategoryBaseCurrency
	// CategoryStaleness covers branches without recent commits.
	CategoryStaleness
	// CategoryWorkingTree covers uncommitted state in the working tree.
	CategoryWorkingTree
	// CategoryConflictRisk covers predicted merge conflicts against the base.
	CategoryConflictRisk
)

func (c FindingCategory) String() string {
	switch c {
	case CategoryRemoteSync:
		return "remote-sync"
	case CategoryBaseCurrency:
		return "base-currency"
	case CategoryStaleness:
		return "staleness"
	case CategoryWorkingTree:
		return "working-tree"
	case CategoryConflictRisk:
		return "conflict-risk"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Severity ranks a finding. Only findings at SeverityWarning or above
// count toward a report's issue count.
type Severity int

const (
	// SeverityInfo is informational only.
	SeverityInfo Severity = iota
	// SeverityWarning needs attention before the branch is merged.
	SeverityWarning
	// SeverityCritical blocks safe merging outright.
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Finding is one observation about a branch.
type Finding struct {
	Category FindingCategory
	Severity Severity
	Message  string
}

// HealthReport aggregates the findings of one health pass over a branch.
// Reports are derived per invocation and never persisted.
type HealthReport struct {
	Branch   string
	Findings []Finding
}

// Add appends a finding.
func (r *HealthReport) Add(category FindingCategory, severity Severity, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{
		Category: category,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// IssueCount counts findings at warning severity or above.
func (r HealthReport) IssueCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity >= SeverityWarning {
			n++
		}
	}
	return n
}

// Healthy reports whether the pass found nothing at warning or above.
func (r HealthReport) Healthy() bool {
	return r.IssueCount() == 0
}
