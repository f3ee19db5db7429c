package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

func eligibleAssessment() model.EligibilityAssessment {
	return model.EligibilityAssessment{
		SchemeID:      "pmkisan_001",
		SchemeName:    "PM-KISAN Samman Nidhi",
		OverallStatus: model.StatusEligible,
	}
}

func conditionalAssessment() model.EligibilityAssessment {
	return model.EligibilityAssessment{
		SchemeID:      "scholarship_005",
		SchemeName:    "Post Matric Scholarship",
		OverallStatus: model.StatusConditionallyEligible,
		ConditionalRules: []model.RuleVerdict{{
			RuleID:    "caste_requirement",
			RuleName:  "Caste Category",
			Reasoning: "Caste category not specified - needs verification with certificate",
			Status:    model.StatusConditionallyEligible,
		}},
		RequiredDocuments: []model.DocumentRequirement{
			{
				DocumentType: "caste_certificate",
				Urgency:      model.UrgencyMedium,
				Description:  "Government-issued caste category certificate",
				Alternatives: []string{"community_certificate", "tribe_certificate"},
			},
			{
				DocumentType: "aadhaar_card",
				Urgency:      model.UrgencyHigh,
				Description:  "12-digit unique identity document",
			},
		},
		MissingDocuments:       []string{"caste_certificate", "aadhaar_card"},
		ImprovementSuggestions: []string{"Obtain a caste certificate from the tehsil office"},
	}
}

func TestBuild_StepOrdering(t *testing.T) {
	plan := Build([]model.EligibilityAssessment{eligibleAssessment(), conditionalAssessment()})

	require.NotEmpty(t, plan.Steps)

	// Category order: documents, applications, verification, improvement.
	var categories []model.StepCategory
	for _, s := range plan.Steps {
		categories = append(categories, s.Category)
	}
	assert.Equal(t, []model.StepCategory{
		model.StepDocument,
		model.StepDocument,
		model.StepApplication,
		model.StepVerification,
		model.StepImprovement,
	}, categories)

	// Order numbers are sequential from 1.
	for i, s := range plan.Steps {
		assert.Equal(t, i+1, s.Order)
	}
}

func TestBuild_DocumentUrgencyOrder(t *testing.T) {
	plan := Build([]model.EligibilityAssessment{conditionalAssessment()})

	require.GreaterOrEqual(t, len(plan.Steps), 2)
	// High-urgency aadhaar comes before the medium-urgency caste certificate.
	assert.Equal(t, "Obtain Aadhaar Card", plan.Steps[0].Title)
	assert.Equal(t, timelineImmediate, plan.Steps[0].Timeline)
	assert.Equal(t, "Obtain Caste Certificate", plan.Steps[1].Title)
	assert.Equal(t, timelineTwoWeeks, plan.Steps[1].Timeline)
	assert.Contains(t, plan.Steps[1].Detail, "community_certificate")
}

func TestBuild_ApplicationStepForEligible(t *testing.T) {
	plan := Build([]model.EligibilityAssessment{eligibleAssessment()})

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "Apply for PM-KISAN Samman Nidhi", plan.Steps[0].Title)
	assert.Equal(t, model.StepApplication, plan.Steps[0].Category)
	assert.Equal(t, timelineOneWeek, plan.Steps[0].Timeline)
	assert.Equal(t, []string{"pmkisan_001"}, plan.EligibleSchemes)
}

func TestBuild_VerificationStepsFromConditionalRules(t *testing.T) {
	plan := Build([]model.EligibilityAssessment{conditionalAssessment()})

	var verification []model.ActionStep
	for _, s := range plan.Steps {
		if s.Category == model.StepVerification {
			verification = append(verification, s)
		}
	}
	require.Len(t, verification, 1)
	assert.Equal(t, "Verify caste category for Post Matric Scholarship", verification[0].Title)
	assert.Contains(t, verification[0].Detail, "needs verification")
	assert.Equal(t, []string{"scholarship_005"}, plan.ConditionalSchemes)
}

func TestBuild_DeduplicatesDocumentsAcrossSchemes(t *testing.T) {
	a := conditionalAssessment()
	b := conditionalAssessment()
	b.SchemeID = "pension_006"
	b.SchemeName = "Old Age Pension"

	plan := Build([]model.EligibilityAssessment{a, b})

	var docTitles []string
	for _, s := range plan.Steps {
		if s.Category == model.StepDocument {
			docTitles = append(docTitles, s.Title)
		}
	}
	assert.Equal(t, []string{"Obtain Aadhaar Card", "Obtain Caste Certificate"}, docTitles)
}

func TestBuild_DeduplicatesImprovementSuggestions(t *testing.T) {
	a := conditionalAssessment()
	b := conditionalAssessment()
	b.SchemeID = "pension_006"

	plan := Build([]model.EligibilityAssessment{a, b})

	var improvements []model.ActionStep
	for _, s := range plan.Steps {
		if s.Category == model.StepImprovement {
			improvements = append(improvements, s)
		}
	}
	require.Len(t, improvements, 1)
	assert.Equal(t, timelineOngoing, improvements[0].Timeline)
}

func TestBuild_NotEligibleProducesNoApplicationSteps(t *testing.T) {
	plan := Build([]model.EligibilityAssessment{{
		SchemeID:      "pmay_002",
		SchemeName:    "PM Awas Yojana",
		OverallStatus: model.StatusNotEligible,
	}})

	assert.Empty(t, plan.Steps)
	assert.Empty(t, plan.EligibleSchemes)
	assert.Empty(t, plan.ConditionalSchemes)
}

func TestBuild_EmptyInput(t *testing.T) {
	plan := Build(nil)
	assert.Empty(t, plan.Steps)
	assert.Contains(t, plan.Summary, "0 scheme(s) ready to apply")
}

func TestBuild_Deterministic(t *testing.T) {
	input := []model.EligibilityAssessment{eligibleAssessment(), conditionalAssessment()}
	first := Build(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Build(input))
	}
}
