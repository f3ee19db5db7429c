package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/catalog"
	"github.com/jansahayak/sahayak-cli/internal/config"
	"github.com/jansahayak/sahayak-cli/internal/enrich"
	"github.com/jansahayak/sahayak-cli/internal/pipeline"
	"github.com/jansahayak/sahayak-cli/internal/store"
	"github.com/jansahayak/sahayak-cli/pkg/anthropic"
)

// appEnv bundles the shared dependencies a command needs.
type appEnv struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	store   *store.SQLiteStore
	pipe    *pipeline.Pipeline
}

func (e *appEnv) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// initEnv builds the catalog, store, refiner, and pipeline from config.
func initEnv(ctx context.Context, mode string) (*appEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}

	pipe := pipeline.New(cat, buildRefiner(), st, cfg)
	return &appEnv{cfg: cfg, catalog: cat, store: st, pipe: pipe}, nil
}

// buildRefiner picks the enrichment strategy: the Anthropic refiner when
// enabled and configured, otherwise the disabled passthrough.
func buildRefiner() enrich.Refiner {
	if !cfg.Enrich.Enabled || cfg.Anthropic.Key == "" {
		zap.L().Info("enrichment disabled, using baseline results only")
		return enrich.Disabled{}
	}
	return enrich.NewAnthropicRefiner(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic, cfg.Enrich)
}

// loadProfileInput reads a raw profile JSON object from a file path, or from
// stdin when the path is "-".
func loadProfileInput(path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "read profile %s", path)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "parse profile %s", path)
	}
	return raw, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
