// Package discovery matches a citizen profile against the scheme catalog and
// ranks the surviving schemes by relevance.
package discovery

import (
	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Discover runs the full discovery path: filter the catalog, score each
// surviving scheme, and bucket the matches into relevance tiers. Matches are
// ordered by descending relevance within each tier.
func Discover(p model.Profile, schemes []model.SchemeRecord) model.DiscoveryResult {
	eligible := Filter(p, schemes)

	matches := make([]model.SchemeMatch, 0, len(eligible))
	for _, s := range eligible {
		matches = append(matches, model.SchemeMatch{
			SchemeID:          s.SchemeID,
			Name:              s.Name,
			Category:          s.Category,
			Description:       s.Description,
			RelevanceScore:    Score(p, s),
			MatchingCriteria:  MatchingCriteria(p, s),
			PotentialBenefits: s.Benefits,
			ConfidenceLevel:   model.ConfidenceMedium,
		})
	}
	sortByRelevance(matches)

	result := Categorize(matches)
	zap.L().Info("discovery: complete",
		zap.Int("schemes_analyzed", len(schemes)),
		zap.Int("eligible_after_filter", len(eligible)),
		zap.Int("highly_relevant", len(result.HighlyRelevant)),
		zap.Int("moderately_relevant", len(result.ModeratelyRelevant)),
		zap.Int("low_relevance", len(result.LowRelevance)),
	)
	return result
}

// Categorize buckets matches by the fixed tier boundaries. Boundary values
// belong to the higher tier: exactly 0.7 is high, exactly 0.4 is medium.
func Categorize(matches []model.SchemeMatch) model.DiscoveryResult {
	result := model.DiscoveryResult{TotalFound: len(matches)}
	for _, m := range matches {
		switch {
		case m.RelevanceScore >= model.HighRelevanceThreshold:
			result.HighlyRelevant = append(result.HighlyRelevant, m)
		case m.RelevanceScore >= model.MediumRelevanceThreshold:
			result.ModeratelyRelevant = append(result.ModeratelyRelevant, m)
		default:
			result.LowRelevance = append(result.LowRelevance, m)
		}
	}
	return result
}

// sortByRelevance sorts matches descending by score. Insertion sort is fine
// for catalog-sized inputs.
func sortByRelevance(matches []model.SchemeMatch) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].RelevanceScore > matches[j-1].RelevanceScore; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}
