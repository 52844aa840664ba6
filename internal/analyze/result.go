package analyze

import (
	"fmt"

	"codeberg.org/mutker/droidpulse/internal/errors"
)

// Issue severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Subsystem statuses. Both the AI path and the rule path use this single
// vocabulary so renderers never need to branch.
const (
	StatusGood     = "good"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// Analysis sources.
const (
	SourceAI    = "ai"
	SourceRules = "rules"
)

const (
	minScore = 1
	maxScore = 10
)

var (
	validCategories = map[string]bool{
		"battery": true, "storage": true, "memory": true,
		"cpu": true, "network": true, "security": true,
	}
	validSeverities = map[string]bool{
		SeverityCritical: true, SeverityWarning: true, SeverityInfo: true,
	}
	validStatuses = map[string]bool{
		StatusGood: true, StatusWarning: true, StatusCritical: true,
	}
)

type Issue struct {
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type Subsystem struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// Result is the structured health verdict. Both analysis branches produce
// the identical shape.
type Result struct {
	HealthScore      int       `json:"health_score"`
	Summary          string    `json:"summary"`
	CriticalIssues   []Issue   `json:"critical_issues"`
	Battery          Subsystem `json:"battery_analysis"`
	Storage          Subsystem `json:"storage_analysis"`
	Memory           Subsystem `json:"memory_analysis"`
	Network          Subsystem `json:"network_analysis"`
	SecurityFindings []string  `json:"security_findings"`
	Recommendations  []string  `json:"recommendations"`
	Source           string    `json:"-"`
}

// Validate enforces the reply contract strictly: enumerations must hold and
// a health score must be present. Scores above the ceiling are clamped, a
// missing or non-positive score is a shape error so the caller can fall
// back to the rule engine.
func (r *Result) Validate() error {
	errFactory := errors.New()

	if r.HealthScore < minScore {
		return errFactory.WithMessage(errors.ErrAnalysisInvalid, "health_score missing or out of range")
	}
	r.HealthScore = clampScore(r.HealthScore)

	for i := range r.CriticalIssues {
		issue := &r.CriticalIssues[i]
		if !validCategories[issue.Category] {
			return errFactory.WithMessage(errors.ErrAnalysisInvalid,
				fmt.Sprintf("unknown issue category %q", issue.Category))
		}
		if !validSeverities[issue.Severity] {
			return errFactory.WithMessage(errors.ErrAnalysisInvalid,
				fmt.Sprintf("unknown issue severity %q", issue.Severity))
		}
	}

	for name, sub := range map[string]Subsystem{
		"battery": r.Battery, "storage": r.Storage,
		"memory": r.Memory, "network": r.Network,
	} {
		if !validStatuses[sub.Status] {
			return errFactory.WithMessage(errors.ErrAnalysisInvalid,
				fmt.Sprintf("unknown %s status %q", name, sub.Status))
		}
	}

	if r.CriticalIssues == nil {
		r.CriticalIssues = []Issue{}
	}
	if r.SecurityFindings == nil {
		r.SecurityFindings = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}

	return nil
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}

	return score
}
