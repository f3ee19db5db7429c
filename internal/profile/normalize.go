// Package profile validates and normalizes loosely-typed profile input at the
// system boundary. Everything downstream of Normalize works with a fully
// defaulted, strongly-typed model.Profile.
package profile

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Income thresholds (annual, INR) for the welfare tiers. The source data uses
// two conflicting BPL cutoffs (12,000 and 200,000) at different call sites;
// this table is the single canonical one: aay <= 8,000 < bpl <= 12,000 <
// apl <= 200,000 < above_apl.
const (
	AAYThreshold = 8000
	BPLThreshold = 12000
	APLThreshold = 200000
)

// HighIncomeThreshold is the income above which a profile is presumed to be
// an income-tax payer for hard-exclusion purposes.
const HighIncomeThreshold = 500000

// DeriveIncomeCategory maps an annual income to its welfare tier.
func DeriveIncomeCategory(annualIncome float64) model.IncomeCategory {
	switch {
	case annualIncome <= AAYThreshold:
		return model.IncomeAAY
	case annualIncome <= BPLThreshold:
		return model.IncomeBPL
	case annualIncome <= APLThreshold:
		return model.IncomeAPL
	default:
		return model.IncomeAboveAPL
	}
}

// Normalize builds a model.Profile from a loosely-typed attribute map, such
// as the output of an upstream extraction step. Malformed fields are coerced
// where safely possible and otherwise replaced by their documented defaults;
// Normalize never fails.
func Normalize(raw map[string]any) model.Profile {
	p := model.Profile{
		Gender:         model.GenderUnknown,
		IncomeCategory: model.IncomeUnknown,
		CasteCategory:  model.CasteUnknown,
		RuralUrban:     model.AreaUnknown,
	}
	if raw == nil {
		return p
	}

	p.Age = asInt(raw["age"])
	p.AnnualIncome = asFloat(raw["annual_income"])
	p.Occupation = asString(raw["occupation"])
	p.EmploymentStatus = strings.ToLower(asString(raw["employment_status"]))
	p.UserType = strings.ToLower(asString(raw["user_type"]))
	p.IsFarmer = asBool(raw["is_farmer"])
	p.DisabilityStatus = asBool(raw["disability_status"])
	p.IsPregnantLactating = asBool(raw["is_pregnant_lactating"])
	p.IsWomanHead = asBool(raw["is_woman_head"])

	if g := parseGender(asString(raw["gender"])); g != "" {
		p.Gender = g
	}
	if c := parseCaste(asString(raw["caste_category"])); c != "" {
		p.CasteCategory = c
	}
	if a := parseArea(asString(raw["rural_urban"])); a != "" {
		p.RuralUrban = a
	}

	if ic := parseIncomeCategory(asString(raw["income_category"])); ic != "" {
		p.IncomeCategory = ic
	} else if _, ok := raw["annual_income"]; ok {
		p.IncomeCategory = DeriveIncomeCategory(p.AnnualIncome)
	}

	p.AvailableDocuments = normalizeDocuments(raw["available_documents"])

	// Occupation implies the farmer flag when the extractor missed it.
	if !p.IsFarmer && strings.Contains(strings.ToLower(p.Occupation), "farmer") {
		p.IsFarmer = true
	}

	return p
}

func parseGender(s string) model.Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return model.GenderMale
	case "female", "f":
		return model.GenderFemale
	case "other":
		return model.GenderOther
	case "unknown":
		return model.GenderUnknown
	default:
		return ""
	}
}

func parseCaste(s string) model.CasteCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "general":
		return model.CasteGeneral
	case "obc":
		return model.CasteOBC
	case "sc":
		return model.CasteSC
	case "st":
		return model.CasteST
	case "unknown":
		return model.CasteUnknown
	default:
		return ""
	}
}

func parseArea(s string) model.AreaType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rural":
		return model.AreaRural
	case "urban":
		return model.AreaUrban
	case "semi_urban", "semi-urban":
		return model.AreaSemiUrban
	case "unknown":
		return model.AreaUnknown
	default:
		return ""
	}
}

func parseIncomeCategory(s string) model.IncomeCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aay":
		return model.IncomeAAY
	case "bpl":
		return model.IncomeBPL
	case "apl":
		return model.IncomeAPL
	case "above_apl":
		return model.IncomeAboveAPL
	default:
		return ""
	}
}

// normalizeDocuments lowercases and trims document names so that the exact
// matching performed by the document gap analyzer behaves predictably.
func normalizeDocuments(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			out := make([]string, 0, len(ss))
			for _, s := range ss {
				if t := strings.ToLower(strings.TrimSpace(s)); t != "" {
					out = append(out, t)
				}
			}
			return out
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if t := strings.ToLower(strings.TrimSpace(s)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			zap.L().Debug("profile: uncoercible int field", zap.String("value", n))
			return 0
		}
		return i
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			zap.L().Debug("profile: uncoercible float field", zap.String("value", n))
			return 0
		}
		return f
	default:
		return 0
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true
		}
	}
	return false
}
