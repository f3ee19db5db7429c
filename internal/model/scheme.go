package model

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// SchemeRecord describes one government welfare scheme. Records are loaded
// once at startup by the catalog package and read-only thereafter.
type SchemeRecord struct {
	SchemeID          string         `json:"scheme_id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	Department        string         `json:"department,omitempty"`
	Description       string         `json:"description"`
	Benefits          map[string]any `json:"benefits,omitempty"`
	Criteria          Criteria       `json:"eligibility_criteria"`
	GeographicalScope string         `json:"geographical_scope,omitempty"`
	TargetGroups      []string       `json:"target_groups,omitempty"`
	TargetAudience    string         `json:"target_audience,omitempty"`
	EligibilityText   string         `json:"eligibility,omitempty"`
	DocumentsRequired []string       `json:"documents_required,omitempty"`
	OfficialWebsite   string         `json:"official_website,omitempty"`
	ApplyLink         string         `json:"apply_link,omitempty"`
	LaunchYear        int            `json:"launch_year,omitempty"`
}

// HasTargetGroup reports whether the scheme lists the given target group.
func (s SchemeRecord) HasTargetGroup(group string) bool {
	for _, g := range s.TargetGroups {
		if g == group {
			return true
		}
	}
	return false
}

// Criteria is a tagged variant: a scheme carries either machine-checkable
// structured criteria or a free-text description, never an implicit mix.
// The zero value means "no criteria known".
type Criteria struct {
	Structured *StructuredCriteria
	Text       string
}

// IsStructured reports whether machine-checkable criteria are present.
func (c Criteria) IsStructured() bool { return c.Structured != nil }

// IsTextOnly reports whether only a free-text description is available.
func (c Criteria) IsTextOnly() bool { return c.Structured == nil && c.Text != "" }

// IsEmpty reports whether no criteria of either form are present.
func (c Criteria) IsEmpty() bool { return c.Structured == nil && c.Text == "" }

// StructuredCriteria holds the machine-checkable eligibility dimensions of a
// scheme. Every field is optional; absence means no constraint from that
// dimension. Unrecognized keys in the source JSON are dropped on decode.
type StructuredCriteria struct {
	AgeMin              *int     `json:"age_min,omitempty"`
	AgeMax              *int     `json:"age_max,omitempty"`
	IncomeMin           *float64 `json:"income_min,omitempty"`
	IncomeMax           *float64 `json:"income_max,omitempty"`
	IncomeCategories    []string `json:"income_category,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	CasteCategory       string   `json:"caste_category,omitempty"`
	RuralUrban          string   `json:"rural_urban,omitempty"`
	IsFarmer            bool     `json:"is_farmer,omitempty"`
	DisabilityStatus    bool     `json:"disability_status,omitempty"`
	IsPregnantLactating bool     `json:"is_pregnant_lactating,omitempty"`
	Exclusions          []string `json:"exclusions,omitempty"`
}

// criteriaJSON mirrors the catalog wire format, where age and income bounds
// arrive as nested {min,max} objects and text-only records carry a single
// text_description key.
type criteriaJSON struct {
	TextDescription string `json:"text_description,omitempty"`

	Age *struct {
		Min *int `json:"min,omitempty"`
		Max *int `json:"max,omitempty"`
	} `json:"age,omitempty"`
	AnnualIncome *struct {
		Min *float64 `json:"min,omitempty"`
		Max *float64 `json:"max,omitempty"`
	} `json:"annual_income,omitempty"`
	IncomeCategories    []string `json:"income_category,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	CasteCategory       string   `json:"caste_category,omitempty"`
	RuralUrban          string   `json:"rural_urban,omitempty"`
	IsFarmer            bool     `json:"is_farmer,omitempty"`
	DisabilityStatus    bool     `json:"disability_status,omitempty"`
	IsPregnantLactating bool     `json:"is_pregnant_lactating,omitempty"`
	Exclusions          []string `json:"exclusions,omitempty"`
}

// UnmarshalJSON decodes the wire form and resolves the variant tag: a record
// whose criteria object contains only text_description is text-only; anything
// with at least one recognized structured key is structured. Unknown keys are
// ignored rather than rejected.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	var cj criteriaJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return eris.Wrap(err, "model: decode criteria")
	}

	sc := StructuredCriteria{
		IncomeCategories:    cj.IncomeCategories,
		Gender:              cj.Gender,
		CasteCategory:       cj.CasteCategory,
		RuralUrban:          cj.RuralUrban,
		IsFarmer:            cj.IsFarmer,
		DisabilityStatus:    cj.DisabilityStatus,
		IsPregnantLactating: cj.IsPregnantLactating,
		Exclusions:          cj.Exclusions,
	}
	if cj.Age != nil {
		sc.AgeMin = cj.Age.Min
		sc.AgeMax = cj.Age.Max
	}
	if cj.AnnualIncome != nil {
		sc.IncomeMin = cj.AnnualIncome.Min
		sc.IncomeMax = cj.AnnualIncome.Max
	}

	if sc.isZero() {
		*c = Criteria{Text: cj.TextDescription}
		return nil
	}
	*c = Criteria{Structured: &sc}
	return nil
}

// MarshalJSON re-encodes the variant back into the wire form.
func (c Criteria) MarshalJSON() ([]byte, error) {
	if c.Structured == nil {
		return json.Marshal(criteriaJSON{TextDescription: c.Text})
	}
	sc := c.Structured
	cj := criteriaJSON{
		IncomeCategories:    sc.IncomeCategories,
		Gender:              sc.Gender,
		CasteCategory:       sc.CasteCategory,
		RuralUrban:          sc.RuralUrban,
		IsFarmer:            sc.IsFarmer,
		DisabilityStatus:    sc.DisabilityStatus,
		IsPregnantLactating: sc.IsPregnantLactating,
		Exclusions:          sc.Exclusions,
	}
	if sc.AgeMin != nil || sc.AgeMax != nil {
		cj.Age = &struct {
			Min *int `json:"min,omitempty"`
			Max *int `json:"max,omitempty"`
		}{Min: sc.AgeMin, Max: sc.AgeMax}
	}
	if sc.IncomeMin != nil || sc.IncomeMax != nil {
		cj.AnnualIncome = &struct {
			Min *float64 `json:"min,omitempty"`
			Max *float64 `json:"max,omitempty"`
		}{Min: sc.IncomeMin, Max: sc.IncomeMax}
	}
	return json.Marshal(cj)
}

func (sc StructuredCriteria) isZero() bool {
	return sc.AgeMin == nil && sc.AgeMax == nil &&
		sc.IncomeMin == nil && sc.IncomeMax == nil &&
		len(sc.IncomeCategories) == 0 &&
		sc.Gender == "" && sc.CasteCategory == "" && sc.RuralUrban == "" &&
		!sc.IsFarmer && !sc.DisabilityStatus && !sc.IsPregnantLactating &&
		len(sc.Exclusions) == 0
}

// HasExclusion reports whether the criteria list the given hard exclusion.
func (sc *StructuredCriteria) HasExclusion(name string) bool {
	if sc == nil {
		return false
	}
	for _, e := range sc.Exclusions {
		if e == name {
			return true
		}
	}
	return false
}
