package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testProfile() model.Profile {
	return model.Profile{
		Age:            45,
		Gender:         model.GenderMale,
		IncomeCategory: model.IncomeBPL,
		IsFarmer:       true,
	}
}

// --- Runs ---

func TestSQLite_CreateAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusQueued, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, 45, got.Profile.Age)
	assert.True(t, got.Profile.IsFarmer)
	assert.Nil(t, got.Result)
}

func TestSQLite_GetRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "no-such-run")
	assert.Error(t, err)
}

func TestSQLite_UpdateRunStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testProfile())
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, run.ID, model.RunStatusAssessing))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusAssessing, got.Status)
}

func TestSQLite_UpdateRunStatus_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateRunStatus(context.Background(), "missing", model.RunStatusComplete)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_UpdateRunResult(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testProfile())
	require.NoError(t, err)

	result := &model.RunResult{
		Discovery: model.DiscoveryResult{TotalFound: 3},
		Assessments: []model.EligibilityAssessment{
			{SchemeID: "pmkisan_001", OverallStatus: model.StatusEligible},
		},
		Enriched: 1,
	}
	require.NoError(t, st.UpdateRunResult(ctx, run.ID, result))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, 3, got.Result.Discovery.TotalFound)
	require.Len(t, got.Result.Assessments, 1)
	assert.Equal(t, model.StatusEligible, got.Result.Assessments[0].OverallStatus)
}

func TestSQLite_UpdateRunResult_ErrorMarksFailed(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testProfile())
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunResult(ctx, run.ID, &model.RunResult{Error: "catalog unavailable"}))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "catalog unavailable", got.Result.Error)
}

func TestSQLite_ListRuns_FilterByStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	a, err := st.CreateRun(ctx, testProfile())
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, testProfile())
	require.NoError(t, err)
	require.NoError(t, st.UpdateRunStatus(ctx, a.ID, model.RunStatusComplete))

	complete, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, a.ID, complete[0].ID)

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLite_ListRuns_Limit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := st.CreateRun(ctx, testProfile())
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, RunFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

// --- Decisions ---

func TestSQLite_LogAndListDecisions(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testProfile())
	require.NoError(t, err)

	d1, err := st.LogDecision(ctx, run.ID, model.Decision{
		SchemeID:  "pmkisan_001",
		Status:    model.StatusEligible,
		Score:     0.85,
		Reasoning: "all criteria met",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d1.ID)
	assert.Equal(t, run.ID, d1.RunID)

	_, err = st.LogDecision(ctx, run.ID, model.Decision{
		SchemeID: "pmay_002",
		Status:   model.StatusNotEligible,
		Score:    0.2,
	})
	require.NoError(t, err)

	decisions, err := st.ListDecisions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, "pmkisan_001", decisions[0].SchemeID)
	assert.Equal(t, model.StatusEligible, decisions[0].Status)
	assert.InDelta(t, 0.85, decisions[0].Score, 0.001)
	assert.Equal(t, "all criteria met", decisions[0].Reasoning)
}

func TestSQLite_ListDecisions_EmptyRun(t *testing.T) {
	st := newTestSQLiteStore(t)

	decisions, err := st.ListDecisions(context.Background(), "no-run")
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestSQLite_MigrateIdempotent(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.Migrate(context.Background()))
	require.NoError(t, st.Migrate(context.Background()))
}
