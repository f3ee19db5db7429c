// Package pipeline orchestrates one full advisory pass: normalize the raw
// profile, discover and rank schemes, assess the top candidates rule by
// rule, enrich with the LLM where enabled, and derive an action plan. Every
// stage transition is persisted so interrupted runs remain inspectable.
package pipeline

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/catalog"
	"github.com/jansahayak/sahayak-cli/internal/config"
	"github.com/jansahayak/sahayak-cli/internal/discovery"
	"github.com/jansahayak/sahayak-cli/internal/eligibility"
	"github.com/jansahayak/sahayak-cli/internal/enrich"
	"github.com/jansahayak/sahayak-cli/internal/model"
	"github.com/jansahayak/sahayak-cli/internal/planner"
	"github.com/jansahayak/sahayak-cli/internal/profile"
	"github.com/jansahayak/sahayak-cli/internal/store"
)

// Pipeline wires the advisory stages together. All dependencies are
// injected; tests substitute a disabled refiner and a temp-file store.
type Pipeline struct {
	catalog *catalog.Catalog
	refiner enrich.Refiner
	store   store.Store
	cfg     *config.Config
}

// New constructs a pipeline.
func New(cat *catalog.Catalog, refiner enrich.Refiner, st store.Store, cfg *config.Config) *Pipeline {
	return &Pipeline{catalog: cat, refiner: refiner, store: st, cfg: cfg}
}

// Run executes one full advisory pass for a raw profile and returns the
// completed run. The run row is updated at every stage transition.
func (p *Pipeline) Run(ctx context.Context, raw map[string]any) (*model.Run, error) {
	prof := profile.Normalize(raw)

	run, err := p.store.CreateRun(ctx, prof)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: create run")
	}
	zap.L().Info("pipeline: run started", zap.String("run_id", run.ID))

	result, err := p.execute(ctx, run.ID, prof)
	if err != nil {
		failure := &model.RunResult{Error: err.Error()}
		if updateErr := p.store.UpdateRunResult(ctx, run.ID, failure); updateErr != nil {
			zap.L().Error("pipeline: failed to record run failure",
				zap.String("run_id", run.ID), zap.Error(updateErr))
		}
		return nil, err
	}

	if err := p.store.UpdateRunResult(ctx, run.ID, result); err != nil {
		return nil, eris.Wrap(err, "pipeline: save run result")
	}

	return p.store.GetRun(ctx, run.ID)
}

func (p *Pipeline) execute(ctx context.Context, runID string, prof model.Profile) (*model.RunResult, error) {
	lookup := func(id string) (model.SchemeRecord, bool) {
		if s := p.catalog.Get(id); s != nil {
			return *s, true
		}
		return model.SchemeRecord{}, false
	}
	topK := p.cfg.Discovery.TopK
	if topK <= 0 {
		topK = 10
	}

	// Discovery: filter, score, rank.
	if err := p.store.UpdateRunStatus(ctx, runID, model.RunStatusDiscovering); err != nil {
		return nil, eris.Wrap(err, "pipeline: mark discovering")
	}
	disc := discovery.Discover(prof, p.catalog.Schemes())

	// Enrichment pass 1: re-score the top matches.
	if err := p.store.UpdateRunStatus(ctx, runID, model.RunStatusEnriching); err != nil {
		return nil, eris.Wrap(err, "pipeline: mark enriching")
	}
	top := disc.Top(topK)
	refined, refinedCount := enrich.RefineMatches(ctx, p.refiner, prof, lookup, top, p.cfg.Enrich.MaxConcurrency)
	disc = rebucket(disc, refined, topK)

	// Assessment: full rule evaluation for the top matches.
	if err := p.store.UpdateRunStatus(ctx, runID, model.RunStatusAssessing); err != nil {
		return nil, eris.Wrap(err, "pipeline: mark assessing")
	}
	assessments := make([]model.EligibilityAssessment, 0, len(refined))
	relevance := make(map[string]float64, len(refined))
	for _, m := range disc.Top(topK) {
		scheme := p.catalog.Get(m.SchemeID)
		if scheme == nil {
			continue
		}
		relevance[m.SchemeID] = m.RelevanceScore
		assessments = append(assessments, eligibility.Assess(prof, *scheme))
	}

	// Enrichment pass 2: narrative reasoning per assessment.
	assessments, explainedCount := enrich.ExplainAssessments(ctx, p.refiner, prof, lookup, assessments, p.cfg.Enrich.MaxConcurrency)

	// Planning.
	if err := p.store.UpdateRunStatus(ctx, runID, model.RunStatusPlanning); err != nil {
		return nil, eris.Wrap(err, "pipeline: mark planning")
	}
	plan := planner.Build(assessments)

	// Decision log, one entry per assessed scheme.
	for _, a := range assessments {
		if _, err := p.store.LogDecision(ctx, runID, model.Decision{
			SchemeID:  a.SchemeID,
			Status:    a.OverallStatus,
			Score:     relevance[a.SchemeID],
			Reasoning: a.EligibilityReasoning,
		}); err != nil {
			return nil, eris.Wrap(err, "pipeline: log decision")
		}
	}

	zap.L().Info("pipeline: run finished",
		zap.String("run_id", runID),
		zap.Int("schemes_found", disc.TotalFound),
		zap.Int("assessed", len(assessments)),
		zap.Int("enriched", refinedCount+explainedCount),
	)

	return &model.RunResult{
		Discovery:   disc,
		Assessments: assessments,
		Plan:        &plan,
		Enriched:    refinedCount + explainedCount,
	}, nil
}

// rebucket folds refined top matches back into the discovery result. The
// refined matches replace their originals; everything past the top-K cut
// keeps its baseline score.
func rebucket(disc model.DiscoveryResult, refined []model.SchemeMatch, topK int) model.DiscoveryResult {
	all := disc.Top(0)
	byID := make(map[string]model.SchemeMatch, len(refined))
	for _, m := range refined {
		byID[m.SchemeID] = m
	}
	for i, m := range all {
		if rm, ok := byID[m.SchemeID]; ok {
			all[i] = rm
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RelevanceScore > all[j].RelevanceScore
	})
	return discovery.Categorize(all)
}
