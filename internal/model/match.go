package model

// ConfidenceLevel grades how confident the scorer is in a match.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// SchemeMatch is a discovery-path result: one scheme that survived the
// eligibility filter, with its normalized relevance score.
type SchemeMatch struct {
	SchemeID          string          `json:"scheme_id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	RelevanceScore    float64         `json:"relevance_score"`
	MatchingCriteria  []string        `json:"matching_criteria,omitempty"`
	PotentialBenefits map[string]any  `json:"potential_benefits,omitempty"`
	ConfidenceLevel   ConfidenceLevel `json:"confidence_level"`
}

// Relevance tier boundaries. A score exactly at a boundary belongs to the
// higher tier.
const (
	HighRelevanceThreshold   = 0.7
	MediumRelevanceThreshold = 0.4
)

// DiscoveryResult buckets scored schemes into relevance tiers.
type DiscoveryResult struct {
	TotalFound         int           `json:"total_schemes_found"`
	HighlyRelevant     []SchemeMatch `json:"highly_relevant"`     // score >= 0.7
	ModeratelyRelevant []SchemeMatch `json:"moderately_relevant"` // 0.4 <= score < 0.7
	LowRelevance       []SchemeMatch `json:"low_relevance"`       // score < 0.4
}

// Top returns up to k matches in descending relevance order, highest tier
// first.
func (r DiscoveryResult) Top(k int) []SchemeMatch {
	var all []SchemeMatch
	all = append(all, r.HighlyRelevant...)
	all = append(all, r.ModeratelyRelevant...)
	all = append(all, r.LowRelevance...)
	if k > 0 && len(all) > k {
		all = all[:k]
	}
	return all
}
