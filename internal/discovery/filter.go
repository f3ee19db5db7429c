// Package discovery implements the discovery path: hard-exclusion and
// categorical filtering of the scheme catalog, weighted relevance scoring,
// and bucketing of results into relevance tiers. All functions are pure over
// their inputs and safe for concurrent use against the same profile.
package discovery

import (
	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/model"
	"github.com/jansahayak/sahayak-cli/internal/profile"
)

// Filter shrinks the catalog to the plausibly-eligible subset for the given
// profile: coarse user-type gating, hard exclusions, then every structured
// positive criterion present. Schemes carrying only text criteria always pass;
// they cannot be mechanically checked here and defer to the scorer.
func Filter(p model.Profile, schemes []model.SchemeRecord) []model.SchemeRecord {
	var eligible []model.SchemeRecord
	for i := range schemes {
		s := &schemes[i]
		if excludedByUserType(p, s) {
			continue
		}
		if !passesBasicEligibility(p, s) {
			continue
		}
		eligible = append(eligible, *s)
	}
	zap.L().Debug("discovery: filtered catalog",
		zap.Int("total", len(schemes)),
		zap.Int("eligible", len(eligible)),
	)
	return eligible
}

// excludedByUserType drops schemes unambiguously typed for the other coarse
// category: a student never sees pure farmer schemes and vice versa. Schemes
// typed for both (or neither) are kept.
func excludedByUserType(p model.Profile, s *model.SchemeRecord) bool {
	switch p.UserType {
	case "student":
		return isFarmerScheme(s) && !isStudentScheme(s)
	case "farmer":
		return isStudentScheme(s) && !isFarmerScheme(s)
	default:
		return false
	}
}

func isStudentScheme(s *model.SchemeRecord) bool {
	text := classifierText(schemeText{s.TargetAudience, s.EligibilityText, s.Name})
	return containsAny(text, studentKeywords)
}

func isFarmerScheme(s *model.SchemeRecord) bool {
	text := classifierText(schemeText{s.TargetAudience, s.EligibilityText, s.Name})
	return containsAny(text, farmerKeywords)
}

// passesBasicEligibility checks hard exclusions first, then every structured
// positive criterion present. Any present-and-failing criterion drops the
// scheme. Text-only criteria always pass.
func passesBasicEligibility(p model.Profile, s *model.SchemeRecord) bool {
	sc := s.Criteria.Structured
	if sc == nil {
		return true
	}

	if sc.HasExclusion("government_employees") && p.EmploymentStatus == "government" {
		return false
	}
	if sc.HasExclusion("income_tax_payers") && p.AnnualIncome > profile.HighIncomeThreshold {
		return false
	}

	if sc.AgeMin != nil && p.Age < *sc.AgeMin {
		return false
	}
	if sc.AgeMax != nil && p.Age > *sc.AgeMax {
		return false
	}

	if sc.Gender != "" && sc.Gender != string(p.Gender) {
		return false
	}

	if len(sc.IncomeCategories) == 0 {
		// No category constraint; fall through to bounds.
	} else if !containsString(sc.IncomeCategories, string(p.IncomeCategory)) {
		return false
	}

	if sc.IncomeMax != nil && p.AnnualIncome > *sc.IncomeMax {
		return false
	}
	if sc.IncomeMin != nil && p.AnnualIncome < *sc.IncomeMin {
		return false
	}

	if sc.RuralUrban != "" && sc.RuralUrban != string(p.RuralUrban) {
		return false
	}

	if sc.IsFarmer && !p.IsFarmer {
		return false
	}
	if sc.DisabilityStatus && !p.DisabilityStatus {
		return false
	}
	if sc.IsPregnantLactating && !p.IsPregnantLactating {
		return false
	}

	return true
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
