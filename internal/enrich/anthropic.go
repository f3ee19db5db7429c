package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/jansahayak/sahayak-cli/internal/config"
	"github.com/jansahayak/sahayak-cli/internal/model"
	"github.com/jansahayak/sahayak-cli/internal/resilience"
	"github.com/jansahayak/sahayak-cli/pkg/anthropic"
)

// AnthropicRefiner implements Refiner against the Anthropic API. Calls are
// rate limited, retried on transient failures, and guarded by a circuit
// breaker so a degraded API degrades to baseline results instead of stalling
// a run.
type AnthropicRefiner struct {
	client  anthropic.Client
	aiCfg   config.AnthropicConfig
	cfg     config.EnrichConfig
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryConfig
}

// NewAnthropicRefiner builds a refiner from configuration. The client is
// injected so tests can substitute a mock.
func NewAnthropicRefiner(client anthropic.Client, aiCfg config.AnthropicConfig, cfg config.EnrichConfig) *AnthropicRefiner {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2.0
	}
	burst := cfg.MaxConcurrency
	if burst <= 0 {
		burst = 4
	}

	retry := resilience.DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}
	retry.OnRetry = resilience.RetryLogger("anthropic", "enrich")

	return &AnthropicRefiner{
		client:  client,
		aiCfg:   aiCfg,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		breaker: resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig()),
		retry:   retry,
	}
}

func (r *AnthropicRefiner) RefineMatch(ctx context.Context, p model.Profile, scheme model.SchemeRecord, match model.SchemeMatch) (model.SchemeMatch, error) {
	text, err := r.complete(ctx, matchSystemPrompt, buildMatchPrompt(p, scheme, match))
	if err != nil {
		return match, err
	}

	refinement, err := parseMatchRefinement(text)
	if err != nil {
		return match, err
	}
	return applyMatchRefinement(match, refinement), nil
}

func (r *AnthropicRefiner) ExplainAssessment(ctx context.Context, p model.Profile, scheme model.SchemeRecord, a model.EligibilityAssessment) (model.EligibilityAssessment, error) {
	text, err := r.complete(ctx, explainSystemPrompt, buildExplainPrompt(p, scheme, a))
	if err != nil {
		return a, err
	}

	explanation, err := parseExplanation(text)
	if err != nil {
		return a, err
	}
	return applyExplanation(a, explanation), nil
}

// complete performs one guarded model call and returns the response text.
func (r *AnthropicRefiner) complete(ctx context.Context, system, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "enrich: rate limiter")
	}

	maxTokens := int64(r.aiCfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	temperature := r.cfg.Temperature

	req := anthropic.MessageRequest{
		Model:       r.aiCfg.Model,
		MaxTokens:   maxTokens,
		System:      anthropic.BuildCachedSystemBlocks(system),
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temperature,
	}

	resp, err := resilience.ExecuteVal(ctx, r.breaker, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return resilience.DoVal(ctx, r.retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
			return r.client.CreateMessage(ctx, req)
		})
	})
	if err != nil {
		return "", err
	}

	resp.Usage.LogCost(r.aiCfg.Model, "enrich")
	return resp.Text(), nil
}
