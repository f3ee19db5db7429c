package model

// Gender is the self-reported gender of an applicant.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// IncomeCategory is the welfare income tier an applicant falls into.
// Ordered by increasing income: AAY < BPL < APL < AboveAPL.
type IncomeCategory string

const (
	IncomeAAY      IncomeCategory = "aay"
	IncomeBPL      IncomeCategory = "bpl"
	IncomeAPL      IncomeCategory = "apl"
	IncomeAboveAPL IncomeCategory = "above_apl"
	IncomeUnknown  IncomeCategory = "unknown"
)

// CasteCategory is the social category used by reservation-based schemes.
type CasteCategory string

const (
	CasteGeneral CasteCategory = "general"
	CasteOBC     CasteCategory = "obc"
	CasteSC      CasteCategory = "sc"
	CasteST      CasteCategory = "st"
	CasteUnknown CasteCategory = "unknown"
)

// AreaType distinguishes rural and urban residence.
type AreaType string

const (
	AreaRural     AreaType = "rural"
	AreaUrban     AreaType = "urban"
	AreaSemiUrban AreaType = "semi_urban"
	AreaUnknown   AreaType = "unknown"
)

// Profile holds the structured attributes of one citizen. It is built once
// per request by profile.Normalize and treated as immutable for the duration
// of a discovery and assessment pass.
type Profile struct {
	Age                 int            `json:"age"`
	Gender              Gender         `json:"gender"`
	AnnualIncome        float64        `json:"annual_income"`
	IncomeCategory      IncomeCategory `json:"income_category"`
	CasteCategory       CasteCategory  `json:"caste_category"`
	RuralUrban          AreaType       `json:"rural_urban"`
	Occupation          string         `json:"occupation,omitempty"`
	EmploymentStatus    string         `json:"employment_status,omitempty"`
	UserType            string         `json:"user_type,omitempty"` // coarse type, e.g. "student" or "farmer"
	IsFarmer            bool           `json:"is_farmer"`
	DisabilityStatus    bool           `json:"disability_status"`
	IsPregnantLactating bool           `json:"is_pregnant_lactating"`
	IsWomanHead         bool           `json:"is_woman_head"`
	AvailableDocuments  []string       `json:"available_documents,omitempty"`
}

// HasDocument reports whether the profile lists the given document.
// Matching is exact; callers normalize case at the boundary.
func (p Profile) HasDocument(doc string) bool {
	for _, d := range p.AvailableDocuments {
		if d == doc {
			return true
		}
	}
	return false
}
