package store

import (
	"context"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for advisory runs and their
// decision log.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, profile model.Profile) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	UpdateRunResult(ctx context.Context, runID string, result *model.RunResult) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Decision log
	LogDecision(ctx context.Context, runID string, d model.Decision) (*model.Decision, error)
	ListDecisions(ctx context.Context, runID string) ([]model.Decision, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
