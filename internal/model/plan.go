package model

// StepCategory classifies an action-plan step.
type StepCategory string

const (
	StepDocument     StepCategory = "document"
	StepApplication  StepCategory = "application"
	StepVerification StepCategory = "verification"
	StepImprovement  StepCategory = "improvement"
)

// ActionStep is one ordered step in an action plan.
type ActionStep struct {
	Order    int          `json:"order"`
	Title    string       `json:"title"`
	Detail   string       `json:"detail,omitempty"`
	Category StepCategory `json:"category"`
	SchemeID string       `json:"scheme_id,omitempty"`
	Timeline string       `json:"timeline,omitempty"` // e.g. "immediate", "within 1 week"
}

// ActionPlan is the ordered to-do list derived from a set of assessments.
type ActionPlan struct {
	Steps              []ActionStep `json:"steps"`
	EligibleSchemes    []string     `json:"eligible_schemes,omitempty"`
	ConditionalSchemes []string     `json:"conditional_schemes,omitempty"`
	Summary            string       `json:"summary,omitempty"`
}
