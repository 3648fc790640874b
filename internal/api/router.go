package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/arbiterhq/arbiter/internal/api/handlers"
	mw "github.com/arbiterhq/arbiter/internal/api/middleware"
	"github.com/arbiterhq/arbiter/internal/config"
	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/search"
	"github.com/arbiterhq/arbiter/internal/service"
	"github.com/arbiterhq/arbiter/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and request counters for the metrics endpoint.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	// Stores
	profileStore := store.NewProfileStore(db)
	journalStore := store.NewJudgmentLogStore(db)

	// Judgment backends via provider factory. A backend whose
	// transport cannot be configured is kept as skipped, distinct from
	// errored; zero configured backends is the one fatal condition.
	tier := config.BackendTier()
	timeout := config.BackendTimeout()
	names := config.Backends()
	backends := make([]service.Backend, 0, len(names))
	for _, name := range names {
		client, err := llm.NewClient(name, config.BackendAPIKey(name), tier)
		if err != nil {
			logger.Warn("backend unavailable, will dispatch as skipped",
				zap.String("backend", name), zap.Error(err))
			backends = append(backends, service.Backend{Name: name, Timeout: timeout, SkipReason: err.Error()})
			continue
		}
		logger.Info("backend configured", zap.String("backend", name), zap.String("tier", tier))
		backends = append(backends, service.Backend{Name: name, Client: client, Timeout: timeout})
	}

	dispatcher, err := service.NewDispatcher(backends, logger)
	if err != nil {
		return nil, err
	}

	// Search client for the evidence retriever. Missing credentials
	// degrade retrieval; they never fail startup.
	var searchClient domain.SearchClient
	searchClient, err = search.NewClient(config.SearchProvider(), config.BraveAPIKey())
	if err != nil {
		logger.Warn("search client initialization failed, evidence will degrade", zap.Error(err))
		searchClient = nil
	} else {
		logger.Info("search client initialized", zap.String("provider", config.SearchProvider()))
	}

	// The first healthy backend doubles as the fact extractor.
	var extractor domain.LLMClient
	for _, b := range backends {
		if b.Client != nil {
			extractor = b.Client
			break
		}
	}

	evidenceSvc := service.NewEvidenceService(
		searchClient, extractor, logger,
		config.SearchMaxResults(), config.EvidenceMaxFacts(), config.EvidenceTimeout(),
	)

	judgmentSvc := service.NewJudgmentService(
		dispatcher, evidenceSvc, profileStore, journalStore,
		domain.DefaultLensSet(names), service.DefaultRuleTables(), logger,
	)

	// Handlers
	judgmentHandler := handlers.NewJudgmentHandler(judgmentSvc)
	evidenceHandler := handlers.NewEvidenceHandler(judgmentSvc)
	profileHandler := handlers.NewProfileHandler(profileStore)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	// Authenticated routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		r.Route("/judgment", func(r chi.Router) {
			r.Post("/orchestrate", judgmentHandler.Orchestrate)
			r.Post("/classify", judgmentHandler.Classify)
			r.Post("/consequence", judgmentHandler.Consequence)
		})

		r.Post("/evidence/retrieve", evidenceHandler.Retrieve)

		r.Get("/profiles/{userKey}", profileHandler.Get)
	})

	return app, nil
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.ProfileStore     = (*store.ProfileStore)(nil)
	_ domain.JudgmentLogStore = (*store.JudgmentLogStore)(nil)
	_ domain.SearchClient     = (*search.BraveClient)(nil)
	_ domain.SearchClient     = (*search.MockClient)(nil)
	_ domain.LLMClient        = (*llm.OpenAIClient)(nil)
	_ domain.LLMClient        = (*llm.AnthropicClient)(nil)
	_ domain.LLMClient        = (*llm.GeminiClient)(nil)
	_ domain.LLMClient        = (*llm.CerebrasClient)(nil)
	_ domain.LLMClient        = (*llm.MockClient)(nil)
)
