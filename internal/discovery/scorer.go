package discovery

import (
	"fmt"
	"math"
	"strings"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Factor weight shares for structured-mode scoring. Each share is added to
// the running max whether or not the factor matches, so the final score is
// normalized over the factors that could have applied.
const (
	incomeWeight      = 0.25
	socialWeight      = 0.20
	demographicWeight = 0.20
	occupationWeight  = 0.15
	specialWeight     = 0.20
)

// neutralScore is returned when no scoring factor was applicable at all.
const neutralScore = 0.5

// Score computes the normalized relevance of one scheme for one profile.
// Deterministic: identical inputs always yield the identical score in [0,1].
func Score(p model.Profile, s model.SchemeRecord) float64 {
	if !s.Criteria.IsStructured() {
		return scoreTextFallback(p, s)
	}
	return scoreStructured(p, s)
}

// scoreStructured accumulates weighted factor credits against the maximum
// achievable weight and normalizes, rounding to 3 decimals.
func scoreStructured(p model.Profile, s model.SchemeRecord) float64 {
	var score, maxScore float64
	sc := s.Criteria.Structured

	// Income category match.
	maxScore += incomeWeight
	if len(sc.IncomeCategories) > 0 && containsString(sc.IncomeCategories, string(p.IncomeCategory)) {
		switch p.IncomeCategory {
		case model.IncomeBPL, model.IncomeAAY:
			score += 0.25
		default:
			score += 0.15
		}
	}

	// Social category match.
	maxScore += socialWeight
	switch {
	case isReservedCaste(p.CasteCategory) && (s.HasTargetGroup("sc_students") || s.HasTargetGroup("st_welfare")):
		score += 0.2
	case s.HasTargetGroup("general"):
		score += 0.1
	}

	// Demographic match: age bands and gender-targeted schemes.
	maxScore += demographicWeight
	switch {
	case p.Age >= 60 && s.HasTargetGroup("senior_citizens"):
		score += 0.2
	case p.Age >= 18 && p.Age <= 35 && s.HasTargetGroup("youth"):
		score += 0.15
	case p.Age < 18 && s.HasTargetGroup("children"):
		score += 0.15
	}
	if p.Gender == model.GenderFemale && hasWomenTargetGroup(s.TargetGroups) {
		score += 0.1
	}

	// Occupation match.
	maxScore += occupationWeight
	category := strings.ToLower(s.Category)
	switch {
	case (p.IsFarmer || strings.Contains(strings.ToLower(p.Occupation), "farmer")) &&
		strings.Contains(category, "agriculture"):
		score += 0.15
	case strings.Contains(category, "employment") && p.EmploymentStatus == "unemployed":
		score += 0.12
	}

	// Special circumstances.
	maxScore += specialWeight
	if p.DisabilityStatus && strings.Contains(category, "disability") {
		score += 0.2
	}
	if p.IsPregnantLactating && strings.Contains(category, "maternal") {
		score += 0.2
	}
	if p.IsWomanHead && s.HasTargetGroup("women") {
		score += 0.15
	}

	if maxScore == 0 {
		return neutralScore
	}
	return round3(math.Min(1.0, score/maxScore))
}

// scoreTextFallback is the degraded mode for schemes that carry only a text
// description: a neutral base plus a boost when the scheme's target audience
// matches the profile's coarse type.
func scoreTextFallback(p model.Profile, s model.SchemeRecord) float64 {
	score := neutralScore
	target := strings.ToLower(s.TargetAudience)

	switch p.UserType {
	case "student":
		if strings.Contains(target, "student") {
			score += 0.3
		}
	case "farmer":
		if strings.Contains(target, "farmer") || strings.Contains(target, "agri") ||
			strings.Contains(target, "rural") {
			score += 0.3
		}
	}

	return round3(math.Min(1.0, score))
}

// MatchingCriteria lists the profile attributes that mechanically match the
// scheme, for user-facing transparency. Falls back to a generic marker when
// nothing specific matched.
func MatchingCriteria(p model.Profile, s model.SchemeRecord) []string {
	var criteria []string
	sc := s.Criteria.Structured

	if sc != nil {
		if containsString(sc.IncomeCategories, string(p.IncomeCategory)) {
			criteria = append(criteria, fmt.Sprintf("income_category_%s", p.IncomeCategory))
		}
		if sc.AgeMin != nil || sc.AgeMax != nil {
			criteria = append(criteria, "age_eligible")
		}
		if sc.Gender != "" && sc.Gender == string(p.Gender) {
			criteria = append(criteria, fmt.Sprintf("gender_%s", p.Gender))
		}
		if p.IsFarmer && sc.IsFarmer {
			criteria = append(criteria, "farmer_category")
		}
	}
	if p.DisabilityStatus && strings.Contains(s.Category, "disability") {
		criteria = append(criteria, "disability_status")
	}

	if len(criteria) == 0 {
		return []string{"basic_eligibility"}
	}
	return criteria
}

func isReservedCaste(c model.CasteCategory) bool {
	return c == model.CasteSC || c == model.CasteST || c == model.CasteOBC
}

func hasWomenTargetGroup(groups []string) bool {
	for _, g := range groups {
		if strings.Contains(g, "women") || strings.Contains(g, "maternal") {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
