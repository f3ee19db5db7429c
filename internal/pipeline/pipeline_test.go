package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansahayak/sahayak-cli/internal/catalog"
	"github.com/jansahayak/sahayak-cli/internal/config"
	"github.com/jansahayak/sahayak-cli/internal/enrich"
	"github.com/jansahayak/sahayak-cli/internal/model"
	"github.com/jansahayak/sahayak-cli/internal/store"
)

func newTestPipeline(t *testing.T) (*Pipeline, store.Store) {
	t.Helper()

	cat, err := catalog.Load("")
	require.NoError(t, err)

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	cfg := &config.Config{}
	cfg.Discovery.TopK = 10
	cfg.Enrich.MaxConcurrency = 2

	return New(cat, enrich.Disabled{}, st, cfg), st
}

func farmerRawProfile() map[string]any {
	return map[string]any{
		"age":           45,
		"gender":        "male",
		"annual_income": 90000,
		"occupation":    "farmer",
		"rural_urban":   "rural",
		"available_documents": []any{
			"aadhaar_card", "land_records", "bank_account",
		},
	}
}

func TestPipelineRun_EndToEnd(t *testing.T) {
	p, _ := newTestPipeline(t)

	run, err := p.Run(context.Background(), farmerRawProfile())
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusComplete, run.Status)
	require.NotNil(t, run.Result)
	assert.Greater(t, run.Result.Discovery.TotalFound, 0)
	assert.NotEmpty(t, run.Result.Assessments)
	require.NotNil(t, run.Result.Plan)
	assert.Equal(t, 0, run.Result.Enriched)

	// The farmer profile must surface PM-KISAN among the assessed schemes.
	var sawPMKisan bool
	for _, a := range run.Result.Assessments {
		if a.SchemeID == "pmkisan_001" {
			sawPMKisan = true
		}
	}
	assert.True(t, sawPMKisan)
}

func TestPipelineRun_ProfileIsNormalized(t *testing.T) {
	p, _ := newTestPipeline(t)

	// Numeric fields arrive as strings, as the web form sends them.
	raw := map[string]any{
		"age":           "32",
		"annual_income": "10000",
		"gender":        "female",
	}

	run, err := p.Run(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, 32, run.Profile.Age)
	assert.Equal(t, model.IncomeBPL, run.Profile.IncomeCategory)
}

func TestPipelineRun_LogsDecisions(t *testing.T) {
	p, st := newTestPipeline(t)

	run, err := p.Run(context.Background(), farmerRawProfile())
	require.NoError(t, err)

	decisions, err := st.ListDecisions(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Len(t, decisions, len(run.Result.Assessments))
	for _, d := range decisions {
		assert.Equal(t, run.ID, d.RunID)
		assert.NotEmpty(t, d.SchemeID)
	}
}

func TestPipelineRun_TopKLimitsAssessments(t *testing.T) {
	p, _ := newTestPipeline(t)
	p.cfg.Discovery.TopK = 2

	run, err := p.Run(context.Background(), farmerRawProfile())
	require.NoError(t, err)

	assert.LessOrEqual(t, len(run.Result.Assessments), 2)
}

func TestRebucket_ReplacesRefinedScores(t *testing.T) {
	baseline := model.DiscoveryResult{
		TotalFound: 2,
		ModeratelyRelevant: []model.SchemeMatch{
			{SchemeID: "a", RelevanceScore: 0.5},
			{SchemeID: "b", RelevanceScore: 0.45},
		},
	}
	refined := []model.SchemeMatch{
		{SchemeID: "b", RelevanceScore: 0.9},
	}

	out := rebucket(baseline, refined, 10)

	require.Len(t, out.HighlyRelevant, 1)
	assert.Equal(t, "b", out.HighlyRelevant[0].SchemeID)
	require.Len(t, out.ModeratelyRelevant, 1)
	assert.Equal(t, "a", out.ModeratelyRelevant[0].SchemeID)

	// Top order follows refined scores.
	top := out.Top(0)
	assert.Equal(t, "b", top[0].SchemeID)
}

func TestPipelineRun_EmptyProfileStillCompletes(t *testing.T) {
	p, _ := newTestPipeline(t)

	run, err := p.Run(context.Background(), map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusComplete, run.Status)
	require.NotNil(t, run.Result)
}
