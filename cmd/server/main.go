package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/transtrainer/backend/internal/api"
	"github.com/transtrainer/backend/internal/grader"
	"github.com/transtrainer/backend/internal/infrastructure/config"
	"github.com/transtrainer/backend/internal/service"
	"github.com/transtrainer/backend/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	questions, err := newStore(cfg)
	if err != nil {
		logger.Error("failed to open question store", "error", err)
		os.Exit(1)
	}
	defer questions.Close()

	llm, err := grader.NewOpenRouter(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.Model, cfg.GradingTimeout)
	if err != nil {
		logger.Error("failed to create grader", "error", err)
		os.Exit(1)
	}

	svc := service.New(questions, llm, logger)
	handler := api.NewHandler(svc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// ── Middleware chain: Logging → CORS → RateLimit → mux ──────────
	// 60 requests per minute per client, same window the reference ran.
	chain := api.Logging(logger)(api.CORS(api.RateLimit(60, time.Minute)(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// The grading call can legitimately hold a response open for the
		// whole provider timeout.
		WriteTimeout: cfg.GradingTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// newStore picks the question-bank backing from config. Both backings are
// read-only and memoize the bank on first access.
func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "sqlite" {
		return store.NewSQLite(cfg.SQLitePath)
	}
	return store.NewJSON(cfg.QuestionsPath), nil
}
