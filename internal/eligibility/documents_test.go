package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

func TestAnalyzeDocuments_Partition(t *testing.T) {
	required := []string{"aadhaar_card", "income_certificate", "bank_account"}
	available := []string{"aadhaar_card", "bank_account"}

	gap := AnalyzeDocuments(required, available)

	assert.Equal(t, []string{"income_certificate"}, gap.Missing)
	assert.Equal(t, []string{"aadhaar_card", "bank_account"}, gap.Available)

	// missing ∪ available == required, missing ∩ available == ∅.
	assert.Len(t, gap.Missing, len(required)-len(gap.Available))
	for _, m := range gap.Missing {
		assert.NotContains(t, gap.Available, m)
	}
}

func TestAnalyzeDocuments_UrgencyTiers(t *testing.T) {
	gap := AnalyzeDocuments([]string{"aadhaar_card", "caste_certificate", "passport_photo"}, nil)
	require.Len(t, gap.Requirements, 3)

	byType := map[string]model.DocumentRequirement{}
	for _, r := range gap.Requirements {
		byType[r.DocumentType] = r
	}

	assert.Equal(t, model.UrgencyHigh, byType["aadhaar_card"].Urgency)
	assert.Equal(t, model.UrgencyMedium, byType["caste_certificate"].Urgency)
	assert.Equal(t, model.UrgencyLow, byType["passport_photo"].Urgency)
}

func TestAnalyzeDocuments_Alternatives(t *testing.T) {
	gap := AnalyzeDocuments([]string{"aadhaar_card", "land_records"}, nil)
	require.Len(t, gap.Requirements, 2)

	assert.Equal(t, []string{"voter_id", "passport", "driving_license"},
		gap.Requirements[0].Alternatives)
	// Unmapped documents default to no alternatives and tier low.
	assert.Empty(t, gap.Requirements[1].Alternatives)
	assert.Equal(t, model.UrgencyLow, gap.Requirements[1].Urgency)
	assert.Equal(t, "Required document: Land Records", gap.Requirements[1].Description)
}

func TestAnalyzeDocuments_CaseSensitive(t *testing.T) {
	// Exact string match by construction; callers normalize upstream.
	gap := AnalyzeDocuments([]string{"aadhaar_card"}, []string{"Aadhaar_Card"})
	assert.Equal(t, []string{"aadhaar_card"}, gap.Missing)
	assert.Empty(t, gap.Available)
}

func TestAnalyzeDocuments_Empty(t *testing.T) {
	gap := AnalyzeDocuments(nil, []string{"aadhaar_card"})
	assert.Empty(t, gap.Missing)
	assert.Empty(t, gap.Available)
	assert.Empty(t, gap.Requirements)
}
