package model

import "time"

// RunStatus represents the current state of an advisory run.
type RunStatus string

const (
	RunStatusQueued      RunStatus = "queued"
	RunStatusDiscovering RunStatus = "discovering"
	RunStatusAssessing   RunStatus = "assessing"
	RunStatusEnriching   RunStatus = "enriching"
	RunStatusPlanning    RunStatus = "planning"
	RunStatusComplete    RunStatus = "complete"
	RunStatusFailed      RunStatus = "failed"
)

// Run represents a single discovery-and-assessment pass for one profile.
type Run struct {
	ID        string     `json:"id"`
	Profile   Profile    `json:"profile"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RunResult holds the final outcome of a run.
type RunResult struct {
	Discovery   DiscoveryResult         `json:"discovery"`
	Assessments []EligibilityAssessment `json:"assessments"`
	Plan        *ActionPlan             `json:"plan,omitempty"`
	Enriched    int                     `json:"enriched"`
	Error       string                  `json:"error,omitempty"`
}

// Decision is one entry in the decision log: what was concluded for one
// scheme and why, kept for audit.
type Decision struct {
	ID        string            `json:"id"`
	RunID     string            `json:"run_id"`
	SchemeID  string            `json:"scheme_id"`
	Status    EligibilityStatus `json:"status"`
	Score     float64           `json:"score"`
	Reasoning string            `json:"reasoning,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
