package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/discovery"
	"github.com/jansahayak/sahayak-cli/internal/eligibility"
	"github.com/jansahayak/sahayak-cli/internal/model"
	"github.com/jansahayak/sahayak-cli/internal/profile"
	"github.com/jansahayak/sahayak-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx, "serve")
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the API routes on top of a shared appEnv.
func newRouter(env *appEnv) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/runs", handleCreateRun(env))
		r.Get("/runs", handleListRuns(env))
		r.Get("/runs/{id}", handleGetRun(env))
		r.Post("/discover", handleDiscover(env))
		r.Post("/assess", handleAssess(env))
		r.Post("/plan", handlePlan(env))
		r.Get("/schemes", handleListSchemes(env))
		r.Get("/schemes/{id}", handleGetScheme(env))
	})
	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateRun executes the full pipeline synchronously and returns the
// persisted run.
func handleCreateRun(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeProfile(w, r)
		if !ok {
			return
		}

		run, err := env.pipe.Run(r.Context(), raw)
		if err != nil {
			zap.L().Error("run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "pipeline run failed")
			return
		}
		writeJSON(w, http.StatusCreated, run)
	}
}

func handleListRuns(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.RunFilter{
			Status: model.RunStatus(r.URL.Query().Get("status")),
			Limit:  50,
		}
		runs, err := env.store.ListRuns(r.Context(), filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "list runs failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"runs": runs, "count": len(runs)})
	}
}

func handleGetRun(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		run, err := env.store.GetRun(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		decisions, err := env.store.ListDecisions(r.Context(), run.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "list decisions failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"run": run, "decisions": decisions})
	}
}

// handleDiscover runs keyword discovery only, without persisting a run.
func handleDiscover(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeProfile(w, r)
		if !ok {
			return
		}

		p := profile.Normalize(raw)
		result := discovery.Discover(p, env.catalog.Schemes())
		writeJSON(w, http.StatusOK, result)
	}
}

// handleAssess evaluates one scheme against a profile without persisting.
func handleAssess(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SchemeID string         `json:"scheme_id"`
			Profile  map[string]any `json:"profile"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.SchemeID == "" {
			writeError(w, http.StatusBadRequest, "scheme_id is required")
			return
		}

		scheme := env.catalog.Get(req.SchemeID)
		if scheme == nil {
			writeError(w, http.StatusNotFound, "scheme not found")
			return
		}

		p := profile.Normalize(req.Profile)
		writeJSON(w, http.StatusOK, eligibility.Assess(p, *scheme))
	}
}

// handlePlan runs the full pipeline and returns only the action plan.
func handlePlan(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeProfile(w, r)
		if !ok {
			return
		}

		run, err := env.pipe.Run(r.Context(), raw)
		if err != nil {
			zap.L().Error("plan run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "pipeline run failed")
			return
		}
		writeJSON(w, http.StatusOK, run.Result.Plan)
	}
}

func handleListSchemes(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemes := env.catalog.Schemes()
		writeJSON(w, http.StatusOK, map[string]any{"schemes": schemes, "count": len(schemes)})
	}
}

func handleGetScheme(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheme := env.catalog.Get(chi.URLParam(r, "id"))
		if scheme == nil {
			writeError(w, http.StatusNotFound, "scheme not found")
			return
		}
		writeJSON(w, http.StatusOK, scheme)
	}
}

func decodeProfile(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return raw, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
