// Package eligibility implements the reasoning path: per-rule evaluation of
// one profile against one scheme's criteria, aggregation into a graded
// overall status, and document gap analysis. Everything here is pure and
// synchronous; concurrent assessments against the same profile share no
// state.
package eligibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Age bound defaults applied when a scheme specifies only one side.
const (
	defaultMinAge = 0
	defaultMaxAge = 150
)

// EvaluateRules runs every rule dimension the scheme's structured criteria
// declare and splits the verdicts by outcome. Schemes without structured
// criteria yield no verdicts; the caller reports insufficient data.
func EvaluateRules(p model.Profile, sc *model.StructuredCriteria) (passed, failed, conditional []model.RuleVerdict) {
	if sc == nil {
		return nil, nil, nil
	}

	var verdicts []model.RuleVerdict

	if sc.AgeMin != nil || sc.AgeMax != nil {
		verdicts = append(verdicts, evaluateAge(p, sc))
	}
	if len(sc.IncomeCategories) > 0 || sc.IncomeMin != nil || sc.IncomeMax != nil {
		verdicts = append(verdicts, evaluateIncome(p, sc))
	}
	if sc.Gender != "" {
		verdicts = append(verdicts, evaluateGender(p, sc.Gender))
	}
	if sc.CasteCategory != "" {
		verdicts = append(verdicts, evaluateCaste(p, sc.CasteCategory))
	}
	if sc.RuralUrban != "" {
		verdicts = append(verdicts, evaluateLocation(p, sc.RuralUrban))
	}
	verdicts = append(verdicts, evaluateSpecialRequirements(p, sc)...)

	for _, v := range verdicts {
		switch v.Status {
		case model.StatusEligible:
			passed = append(passed, v)
		case model.StatusConditionallyEligible, model.StatusInsufficientData:
			conditional = append(conditional, v)
		default:
			failed = append(failed, v)
		}
	}
	return passed, failed, conditional
}

func evaluateAge(p model.Profile, sc *model.StructuredCriteria) model.RuleVerdict {
	minAge, maxAge := defaultMinAge, defaultMaxAge
	if sc.AgeMin != nil {
		minAge = *sc.AgeMin
	}
	if sc.AgeMax != nil {
		maxAge = *sc.AgeMax
	}

	v := model.RuleVerdict{
		RuleID:        "age_requirement",
		RuleName:      "Age Eligibility",
		Description:   fmt.Sprintf("Age must be between %d and %d", minAge, maxAge),
		RequiredValue: fmt.Sprintf("%d-%d", minAge, maxAge),
		ActualValue:   p.Age,
		Weight:        1.0,
	}
	if p.Age >= minAge && p.Age <= maxAge {
		v.Status = model.StatusEligible
		v.Reasoning = fmt.Sprintf("Age %d is within required range %d-%d", p.Age, minAge, maxAge)
	} else {
		v.Status = model.StatusNotEligible
		v.Reasoning = fmt.Sprintf("Age %d is outside required range %d-%d", p.Age, minAge, maxAge)
	}
	return v
}

// evaluateIncome prefers the category-membership test when the scheme lists
// income categories, falls back to the numeric bounds test, and reports
// insufficient data (at reduced weight) when the criterion is empty.
func evaluateIncome(p model.Profile, sc *model.StructuredCriteria) model.RuleVerdict {
	if len(sc.IncomeCategories) > 0 {
		v := model.RuleVerdict{
			RuleID:        "income_category",
			RuleName:      "Income Category",
			Description:   fmt.Sprintf("Must belong to categories: %s", strings.Join(sc.IncomeCategories, ", ")),
			RequiredValue: sc.IncomeCategories,
			ActualValue:   string(p.IncomeCategory),
			Weight:        1.0,
		}
		for _, cat := range sc.IncomeCategories {
			if cat == string(p.IncomeCategory) {
				v.Status = model.StatusEligible
				v.Reasoning = fmt.Sprintf("Income category %s is in the required list", p.IncomeCategory)
				return v
			}
		}
		v.Status = model.StatusNotEligible
		v.Reasoning = fmt.Sprintf("Income category %s is not in the required categories", p.IncomeCategory)
		return v
	}

	if sc.IncomeMin != nil || sc.IncomeMax != nil {
		minIncome, maxIncome := 0.0, math.Inf(1)
		if sc.IncomeMin != nil {
			minIncome = *sc.IncomeMin
		}
		if sc.IncomeMax != nil {
			maxIncome = *sc.IncomeMax
		}

		v := model.RuleVerdict{
			RuleID:        "income_limit",
			RuleName:      "Income Limit",
			Description:   fmt.Sprintf("Annual income must be between %s and %s", formatINR(minIncome), formatINR(maxIncome)),
			RequiredValue: fmt.Sprintf("%s - %s", formatINR(minIncome), formatINR(maxIncome)),
			ActualValue:   formatINR(p.AnnualIncome),
			Weight:        1.0,
		}
		if p.AnnualIncome >= minIncome && p.AnnualIncome <= maxIncome {
			v.Status = model.StatusEligible
			v.Reasoning = fmt.Sprintf("Annual income %s is within the required range", formatINR(p.AnnualIncome))
		} else {
			v.Status = model.StatusNotEligible
			v.Reasoning = fmt.Sprintf("Annual income %s is outside the required range", formatINR(p.AnnualIncome))
		}
		return v
	}

	return model.RuleVerdict{
		RuleID:        "income_general",
		RuleName:      "Income Requirements",
		Description:   "Income criteria evaluation",
		RequiredValue: "varies",
		ActualValue:   formatINR(p.AnnualIncome),
		Status:        model.StatusInsufficientData,
		Reasoning:     "Insufficient data for income evaluation",
		Weight:        0.5,
	}
}

// evaluateGender is a strict binary test; gender criteria are always
// mandatory in this model, with no conditional state.
func evaluateGender(p model.Profile, required string) model.RuleVerdict {
	v := model.RuleVerdict{
		RuleID:        "gender_requirement",
		RuleName:      "Gender Requirement",
		Description:   fmt.Sprintf("Scheme is for %s applicants only", required),
		RequiredValue: required,
		ActualValue:   string(p.Gender),
		Weight:        1.0,
	}
	if string(p.Gender) == required {
		v.Status = model.StatusEligible
		v.Reasoning = fmt.Sprintf("Gender %s matches the requirement", p.Gender)
	} else {
		v.Status = model.StatusNotEligible
		v.Reasoning = fmt.Sprintf("Gender %s does not match the %s requirement", p.Gender, required)
	}
	return v
}

// evaluateCaste is the one three-way rule: match, unknown (needs certificate
// verification, conditional), or mismatch.
func evaluateCaste(p model.Profile, required string) model.RuleVerdict {
	v := model.RuleVerdict{
		RuleID:        "caste_requirement",
		RuleName:      "Caste Category",
		Description:   fmt.Sprintf("Scheme is for the %s category", strings.ToUpper(required)),
		RequiredValue: required,
		ActualValue:   string(p.CasteCategory),
		Weight:        1.0,
	}
	switch {
	case string(p.CasteCategory) == required:
		v.Status = model.StatusEligible
		v.Reasoning = fmt.Sprintf("Belongs to the %s category as required", strings.ToUpper(required))
	case p.CasteCategory == model.CasteUnknown:
		v.Status = model.StatusConditionallyEligible
		v.Reasoning = "Caste category not specified - needs verification with certificate"
	default:
		v.Status = model.StatusNotEligible
		v.Reasoning = fmt.Sprintf("The %s category does not match the %s requirement",
			strings.ToUpper(string(p.CasteCategory)), strings.ToUpper(required))
	}
	return v
}

func evaluateLocation(p model.Profile, required string) model.RuleVerdict {
	v := model.RuleVerdict{
		RuleID:        "location_requirement",
		RuleName:      "Location Type",
		Description:   fmt.Sprintf("Scheme is for %s areas only", required),
		RequiredValue: required,
		ActualValue:   string(p.RuralUrban),
		Weight:        1.0,
	}
	if string(p.RuralUrban) == required {
		v.Status = model.StatusEligible
		v.Reasoning = fmt.Sprintf("Resides in a %s area as required", p.RuralUrban)
	} else {
		v.Status = model.StatusNotEligible
		v.Reasoning = fmt.Sprintf("Resides in a %s area but the scheme requires %s", p.RuralUrban, required)
	}
	return v
}

// evaluateSpecialRequirements produces one independent verdict per special
// flag the scheme declares as required.
func evaluateSpecialRequirements(p model.Profile, sc *model.StructuredCriteria) []model.RuleVerdict {
	var verdicts []model.RuleVerdict

	if sc.IsFarmer {
		verdicts = append(verdicts, booleanVerdict(
			"farmer_requirement", "Farmer Status", "Applicant must be a farmer",
			p.IsFarmer, "is a farmer", "is not a farmer"))
	}
	if sc.DisabilityStatus {
		verdicts = append(verdicts, booleanVerdict(
			"disability_requirement", "Disability Status", "Scheme is for persons with disabilities",
			p.DisabilityStatus, "has disability status", "does not have disability status"))
	}
	if sc.IsPregnantLactating {
		verdicts = append(verdicts, booleanVerdict(
			"pregnancy_requirement", "Pregnancy/Lactation Status", "Scheme is for pregnant or lactating women",
			p.IsPregnantLactating, "is pregnant or lactating", "is not pregnant or lactating"))
	}
	return verdicts
}

func booleanVerdict(id, name, description string, actual bool, yes, no string) model.RuleVerdict {
	v := model.RuleVerdict{
		RuleID:        id,
		RuleName:      name,
		Description:   description,
		RequiredValue: true,
		ActualValue:   actual,
		Weight:        1.0,
	}
	if actual {
		v.Status = model.StatusEligible
		v.Reasoning = "Applicant " + yes
	} else {
		v.Status = model.StatusNotEligible
		v.Reasoning = "Applicant " + no
	}
	return v
}

// formatINR renders an income amount with the rupee sign and thousands
// separators, matching the reasoning-string style used in explanations.
func formatINR(v float64) string {
	if math.IsInf(v, 1) {
		return "no upper limit"
	}
	n := int64(v)
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var b strings.Builder
		pre := len(s) % 3
		if pre > 0 {
			b.WriteString(s[:pre])
			if len(s) > pre {
				b.WriteString(",")
			}
		}
		for i := pre; i < len(s); i += 3 {
			b.WriteString(s[i : i+3])
			if i+3 < len(s) {
				b.WriteString(",")
			}
		}
		s = b.String()
	}
	return "₹" + s
}
