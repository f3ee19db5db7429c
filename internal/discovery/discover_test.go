package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

func TestCategorize_BoundaryExact(t *testing.T) {
	matches := []model.SchemeMatch{
		{SchemeID: "exactly_high", RelevanceScore: 0.7},
		{SchemeID: "high", RelevanceScore: 0.95},
		{SchemeID: "exactly_medium", RelevanceScore: 0.4},
		{SchemeID: "medium", RelevanceScore: 0.69},
		{SchemeID: "low", RelevanceScore: 0.399},
		{SchemeID: "zero", RelevanceScore: 0},
	}

	result := Categorize(matches)

	assert.Equal(t, 6, result.TotalFound)
	assert.ElementsMatch(t, []string{"exactly_high", "high"}, matchIDs(result.HighlyRelevant))
	assert.ElementsMatch(t, []string{"exactly_medium", "medium"}, matchIDs(result.ModeratelyRelevant))
	assert.ElementsMatch(t, []string{"low", "zero"}, matchIDs(result.LowRelevance))
}

func TestCategorize_PartitionIsExhaustive(t *testing.T) {
	matches := []model.SchemeMatch{
		{RelevanceScore: 0.1}, {RelevanceScore: 0.5}, {RelevanceScore: 0.9},
	}
	result := Categorize(matches)
	total := len(result.HighlyRelevant) + len(result.ModeratelyRelevant) + len(result.LowRelevance)
	assert.Equal(t, len(matches), total)
}

func TestDiscover_EndToEnd(t *testing.T) {
	p := model.Profile{
		Age:            45,
		Gender:         model.GenderMale,
		IncomeCategory: model.IncomeBPL,
		RuralUrban:     model.AreaRural,
		IsFarmer:       true,
		UserType:       "farmer",
		Occupation:     "farmer",
	}

	schemes := []model.SchemeRecord{
		{
			SchemeID: "pmkisan_001",
			Name:     "PM-KISAN",
			Category: "agriculture",
			Criteria: model.Criteria{Structured: &model.StructuredCriteria{
				IsFarmer:         true,
				IncomeCategories: []string{"bpl", "apl"},
				Exclusions:       []string{"income_tax_payers"},
			}},
			TargetGroups: []string{"farmers"},
		},
		{
			SchemeID: "scholarship_005",
			Name:     "Post Matric Scholarship for SC Students",
			Category: "education",
			Criteria: model.Criteria{Structured: &model.StructuredCriteria{
				CasteCategory: "sc",
			}},
			TargetGroups: []string{"sc_students"},
		},
		{
			SchemeID:       "vendor_009",
			Name:           "Street Vendor Credit",
			TargetAudience: "vendors",
			Criteria:       model.Criteria{Text: "registered street vendors"},
		},
	}

	result := Discover(p, schemes)

	// The student-typed scholarship is gated out for a farmer profile.
	all := result.Top(0)
	ids := matchIDs(all)
	assert.NotContains(t, ids, "scholarship_005")
	assert.Contains(t, ids, "pmkisan_001")
	assert.Contains(t, ids, "vendor_009")

	// Matches are ordered by descending relevance.
	require.GreaterOrEqual(t, len(all), 2)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].RelevanceScore, all[i].RelevanceScore)
	}
}

func TestDiscover_EmptyCatalog(t *testing.T) {
	result := Discover(model.Profile{}, nil)
	assert.Equal(t, 0, result.TotalFound)
	assert.Empty(t, result.HighlyRelevant)
	assert.Empty(t, result.ModeratelyRelevant)
	assert.Empty(t, result.LowRelevance)
}

func matchIDs(matches []model.SchemeMatch) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.SchemeID)
	}
	return ids
}
