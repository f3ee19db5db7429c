// Package enrich layers optional LLM analysis over the deterministic
// discovery and assessment results. Every operation degrades to the
// deterministic baseline when the model is unavailable or returns something
// unusable; enrichment can adjust scores and add narrative, never remove a
// result.
package enrich

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Refiner produces LLM-adjusted views of baseline results.
type Refiner interface {
	// RefineMatch re-scores one discovery match in the context of the full
	// profile and scheme record.
	RefineMatch(ctx context.Context, p model.Profile, scheme model.SchemeRecord, match model.SchemeMatch) (model.SchemeMatch, error)

	// ExplainAssessment adds narrative reasoning and improvement
	// suggestions to one eligibility assessment.
	ExplainAssessment(ctx context.Context, p model.Profile, scheme model.SchemeRecord, a model.EligibilityAssessment) (model.EligibilityAssessment, error)
}

// Disabled is a Refiner that returns every input unchanged. Used when
// enrichment is turned off or no API key is configured.
type Disabled struct{}

func (Disabled) RefineMatch(_ context.Context, _ model.Profile, _ model.SchemeRecord, match model.SchemeMatch) (model.SchemeMatch, error) {
	return match, nil
}

func (Disabled) ExplainAssessment(_ context.Context, _ model.Profile, _ model.SchemeRecord, a model.EligibilityAssessment) (model.EligibilityAssessment, error) {
	return a, nil
}

// SchemeLookup resolves a scheme ID to its full catalog record.
type SchemeLookup func(id string) (model.SchemeRecord, bool)

// RefineMatches runs RefineMatch over the given matches with bounded
// concurrency. Output order matches input order. A match whose refinement
// fails keeps its baseline score with confidence downgraded to low; the
// returned count is how many matches were actually refined.
func RefineMatches(ctx context.Context, r Refiner, p model.Profile, lookup SchemeLookup, matches []model.SchemeMatch, maxConcurrency int) ([]model.SchemeMatch, int) {
	if len(matches) == 0 {
		return nil, 0
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}

	out := make([]model.SchemeMatch, len(matches))
	var refined atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, m := range matches {
		g.Go(func() error {
			scheme, ok := lookup(m.SchemeID)
			if !ok {
				out[i] = m
				return nil
			}

			result, err := r.RefineMatch(gCtx, p, scheme, m)
			if err != nil {
				zap.L().Warn("enrich: match refinement failed, keeping baseline",
					zap.String("scheme_id", m.SchemeID),
					zap.Error(err),
				)
				m.ConfidenceLevel = model.ConfidenceLow
				out[i] = m
				return nil
			}

			out[i] = result
			refined.Add(1)
			return nil
		})
	}

	_ = g.Wait()
	return out, int(refined.Load())
}

// ExplainAssessments runs ExplainAssessment over the given assessments with
// bounded concurrency. Output order matches input order; failed explanations
// keep the baseline assessment untouched.
func ExplainAssessments(ctx context.Context, r Refiner, p model.Profile, lookup SchemeLookup, assessments []model.EligibilityAssessment, maxConcurrency int) ([]model.EligibilityAssessment, int) {
	if len(assessments) == 0 {
		return nil, 0
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}

	out := make([]model.EligibilityAssessment, len(assessments))
	var explained atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, a := range assessments {
		g.Go(func() error {
			scheme, ok := lookup(a.SchemeID)
			if !ok {
				out[i] = a
				return nil
			}

			result, err := r.ExplainAssessment(gCtx, p, scheme, a)
			if err != nil {
				zap.L().Warn("enrich: assessment explanation failed, keeping baseline",
					zap.String("scheme_id", a.SchemeID),
					zap.Error(err),
				)
				out[i] = a
				return nil
			}

			out[i] = result
			explained.Add(1)
			return nil
		})
	}

	_ = g.Wait()
	return out, int(explained.Load())
}
