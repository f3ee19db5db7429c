package model

import "time"

// EligibilityStatus is the graded outcome of an eligibility evaluation, for
// both a single rule and a whole assessment.
type EligibilityStatus string

const (
	StatusEligible              EligibilityStatus = "eligible"
	StatusNotEligible           EligibilityStatus = "not_eligible"
	StatusConditionallyEligible EligibilityStatus = "conditionally_eligible"
	StatusInsufficientData      EligibilityStatus = "insufficient_data"
)

// RuleVerdict is the result of testing one profile attribute against one
// scheme criterion. Verdicts are created fresh per (profile, scheme, rule)
// evaluation and never mutated.
type RuleVerdict struct {
	RuleID        string            `json:"rule_id"`
	RuleName      string            `json:"rule_name"`
	Description   string            `json:"description"`
	RequiredValue any               `json:"required_value"`
	ActualValue   any               `json:"actual_value"`
	Status        EligibilityStatus `json:"status"`
	Reasoning     string            `json:"reasoning"`
	Weight        float64           `json:"weight"`
}

// Mandatory reports whether failing this rule alone denies eligibility.
func (v RuleVerdict) Mandatory() bool { return v.Weight >= 1.0 }

// DocumentUrgency ranks how urgently a missing document should be obtained.
type DocumentUrgency string

const (
	UrgencyLow    DocumentUrgency = "low"
	UrgencyMedium DocumentUrgency = "medium"
	UrgencyHigh   DocumentUrgency = "high"
)

// DocumentRequirement describes one required document and whether the
// applicant already holds it.
type DocumentRequirement struct {
	DocumentType string          `json:"document_type"`
	Required     bool            `json:"required"`
	Available    bool            `json:"available"`
	Alternatives []string        `json:"alternatives,omitempty"`
	Urgency      DocumentUrgency `json:"urgency"`
	Description  string          `json:"description,omitempty"`
}

// EligibilityAssessment is the aggregate verdict for one (profile, scheme)
// pair: per-rule outcomes, the overall status, and the document gap.
type EligibilityAssessment struct {
	SchemeID      string            `json:"scheme_id"`
	SchemeName    string            `json:"scheme_name"`
	OverallStatus EligibilityStatus `json:"overall_status"`

	ConfidenceScore  float64 `json:"confidence_score"`
	DataCompleteness float64 `json:"data_completeness"`

	PassedRules      []RuleVerdict `json:"passed_rules,omitempty"`
	FailedRules      []RuleVerdict `json:"failed_rules,omitempty"`
	ConditionalRules []RuleVerdict `json:"conditional_rules,omitempty"`

	RequiredDocuments  []DocumentRequirement `json:"required_documents,omitempty"`
	MissingDocuments   []string              `json:"missing_documents,omitempty"`
	AvailableDocuments []string              `json:"available_documents,omitempty"`

	EligibilityReasoning   string   `json:"eligibility_reasoning,omitempty"`
	ImprovementSuggestions []string `json:"improvement_suggestions,omitempty"`

	AssessedAt time.Time `json:"assessed_at"`
}

// TotalRules returns the number of rules evaluated in this assessment.
func (a EligibilityAssessment) TotalRules() int {
	return len(a.PassedRules) + len(a.FailedRules) + len(a.ConditionalRules)
}
