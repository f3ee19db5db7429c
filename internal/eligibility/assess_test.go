package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

func farmerScheme() model.SchemeRecord {
	return model.SchemeRecord{
		SchemeID: "pmkisan_001",
		Name:     "PM-KISAN Samman Nidhi",
		Criteria: model.Criteria{Structured: &model.StructuredCriteria{
			IsFarmer:         true,
			IncomeCategories: []string{"bpl", "apl"},
			AgeMin:           intPtr(18),
		}},
		DocumentsRequired: []string{"aadhaar_card", "land_records", "bank_account"},
	}
}

func TestAssess_FarmerFullyEligible(t *testing.T) {
	p := model.Profile{
		Age:                45,
		Gender:             model.GenderMale,
		IncomeCategory:     model.IncomeBPL,
		CasteCategory:      model.CasteOBC,
		IsFarmer:           true,
		AvailableDocuments: []string{"aadhaar_card", "land_records", "bank_account"},
	}

	a := Assess(p, farmerScheme())

	assert.Equal(t, model.StatusEligible, a.OverallStatus)
	assert.Equal(t, "pmkisan_001", a.SchemeID)
	assert.Empty(t, a.FailedRules)
	assert.Empty(t, a.ConditionalRules)
	assert.Empty(t, a.MissingDocuments)
	assert.NotEmpty(t, a.PassedRules)
	assert.Equal(t, 1.0, a.DataCompleteness)
	assert.False(t, a.AssessedAt.IsZero())
}

func TestAssess_UnderageIsNotEligible(t *testing.T) {
	p := model.Profile{
		Age:                15,
		IncomeCategory:     model.IncomeBPL,
		IsFarmer:           true,
		AvailableDocuments: []string{"aadhaar_card", "land_records", "bank_account"},
	}

	a := Assess(p, farmerScheme())

	assert.Equal(t, model.StatusNotEligible, a.OverallStatus)
	require.NotEmpty(t, a.FailedRules)
	assert.Equal(t, "age_requirement", a.FailedRules[0].RuleID)
}

func TestAssess_UnknownCasteIsConditional(t *testing.T) {
	sc := model.SchemeRecord{
		SchemeID: "scholarship_005",
		Name:     "Post Matric Scholarship",
		Criteria: model.Criteria{Structured: &model.StructuredCriteria{
			CasteCategory: "sc",
		}},
	}
	p := model.Profile{Age: 20, CasteCategory: model.CasteUnknown}

	a := Assess(p, sc)

	assert.Equal(t, model.StatusConditionallyEligible, a.OverallStatus)
	require.NotEmpty(t, a.ConditionalRules)
	assert.Contains(t, a.ConditionalRules[0].Reasoning, "verification")
}

func TestAssess_MissingDocumentsForceConditional(t *testing.T) {
	sc := model.SchemeRecord{
		SchemeID: "ration_008",
		Name:     "Public Distribution System",
		Criteria: model.Criteria{Structured: &model.StructuredCriteria{
			IncomeCategories: []string{"bpl", "aay"},
		}},
		DocumentsRequired: []string{"aadhaar_card", "income_certificate"},
	}
	p := model.Profile{
		Age:                30,
		IncomeCategory:     model.IncomeBPL,
		AvailableDocuments: []string{"aadhaar_card"},
	}

	a := Assess(p, sc)

	assert.Equal(t, model.StatusConditionallyEligible, a.OverallStatus)
	assert.Equal(t, []string{"income_certificate"}, a.MissingDocuments)
	assert.Equal(t, []string{"aadhaar_card"}, a.AvailableDocuments)
	assert.Empty(t, a.FailedRules)
}

func TestAssess_TextOnlyCriteria(t *testing.T) {
	sc := model.SchemeRecord{
		SchemeID: "json_1",
		Name:     "State Housing Assistance",
		Criteria: model.Criteria{Text: "Low income families in rural areas"},
	}

	a := Assess(model.Profile{Age: 30}, sc)

	// No structured rules to evaluate, no document requirements either.
	assert.Equal(t, model.StatusInsufficientData, a.OverallStatus)
	assert.Equal(t, 0.5, a.DataCompleteness)
	assert.Equal(t, DefaultConfidence, a.ConfidenceScore)
}
