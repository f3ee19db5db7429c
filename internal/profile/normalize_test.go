package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

func TestDeriveIncomeCategory(t *testing.T) {
	// Canonical three-tier table. The alternate 200,000-as-BPL cutoff that
	// appeared at one call site of the source data is deliberately NOT used.
	assert.Equal(t, model.IncomeAAY, DeriveIncomeCategory(5000))
	assert.Equal(t, model.IncomeAAY, DeriveIncomeCategory(8000))
	assert.Equal(t, model.IncomeBPL, DeriveIncomeCategory(10000))
	assert.Equal(t, model.IncomeBPL, DeriveIncomeCategory(12000))
	assert.Equal(t, model.IncomeAPL, DeriveIncomeCategory(150000))
	assert.Equal(t, model.IncomeAPL, DeriveIncomeCategory(200000))
	assert.Equal(t, model.IncomeAboveAPL, DeriveIncomeCategory(300000))
}

func TestNormalize_TypicalInput(t *testing.T) {
	p := Normalize(map[string]any{
		"age":                 45,
		"gender":              "Female",
		"annual_income":       11000.0,
		"caste_category":      "OBC",
		"rural_urban":         "rural",
		"occupation":          "Farmer",
		"is_farmer":           true,
		"available_documents": []any{"Aadhaar_Card", " bank_account "},
	})

	assert.Equal(t, 45, p.Age)
	assert.Equal(t, model.GenderFemale, p.Gender)
	assert.Equal(t, model.CasteOBC, p.CasteCategory)
	assert.Equal(t, model.AreaRural, p.RuralUrban)
	assert.True(t, p.IsFarmer)
	// Derived from income because category was not supplied.
	assert.Equal(t, model.IncomeBPL, p.IncomeCategory)
	assert.Equal(t, []string{"aadhaar_card", "bank_account"}, p.AvailableDocuments)
}

func TestNormalize_CoercesStringNumbers(t *testing.T) {
	p := Normalize(map[string]any{
		"age":           "32",
		"annual_income": "45000",
		"is_farmer":     "yes",
	})

	assert.Equal(t, 32, p.Age)
	assert.Equal(t, 45000.0, p.AnnualIncome)
	assert.True(t, p.IsFarmer)
	assert.Equal(t, model.IncomeAPL, p.IncomeCategory)
}

func TestNormalize_MalformedFieldsDefaulted(t *testing.T) {
	p := Normalize(map[string]any{
		"age":            "forty-five",
		"gender":         "banana",
		"annual_income":  []any{1, 2},
		"caste_category": 7,
	})

	assert.Equal(t, 0, p.Age)
	assert.Equal(t, model.GenderUnknown, p.Gender)
	assert.Equal(t, 0.0, p.AnnualIncome)
	assert.Equal(t, model.CasteUnknown, p.CasteCategory)
}

func TestNormalize_Nil(t *testing.T) {
	p := Normalize(nil)
	assert.Equal(t, model.GenderUnknown, p.Gender)
	assert.Equal(t, model.IncomeUnknown, p.IncomeCategory)
	assert.Equal(t, model.CasteUnknown, p.CasteCategory)
	assert.Equal(t, model.AreaUnknown, p.RuralUrban)
}

func TestNormalize_ExplicitCategoryWinsOverDerivation(t *testing.T) {
	p := Normalize(map[string]any{
		"annual_income":   300000.0,
		"income_category": "bpl", // e.g. certified BPL card despite reported income
	})
	assert.Equal(t, model.IncomeBPL, p.IncomeCategory)
}

func TestNormalize_OccupationImpliesFarmer(t *testing.T) {
	p := Normalize(map[string]any{"occupation": "tenant farmer"})
	assert.True(t, p.IsFarmer)
}
