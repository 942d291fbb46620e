package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/learnwithai/backend/internal/ai"
	"github.com/learnwithai/backend/internal/api"
	"github.com/learnwithai/backend/internal/catalog"
	"github.com/learnwithai/backend/internal/generate"
	"github.com/learnwithai/backend/internal/imagegen"
	"github.com/learnwithai/backend/internal/language"
	"github.com/learnwithai/backend/internal/platform/cache"
	"github.com/learnwithai/backend/internal/platform/config"
	"github.com/learnwithai/backend/internal/platform/database"
	"github.com/learnwithai/backend/internal/progress"
	"github.com/learnwithai/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	handler, cleanup, err := buildHandler(ctx, cfg)
	if err != nil {
		slog.Error("failed to build server", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogging(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// buildHandler wires config into the full dependency graph. Database and
// cache are optional: without them the content store and progress tracker
// run in memory, which is how local development works.
func buildHandler(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	checks := map[string]api.HealthChecker{}

	var contentStore store.ContentStore = store.NewMemoryStore()
	if cfg.Database.URL != "" {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connecting to database: %w", err)
		}
		cleanups = append(cleanups, db.Close)
		checks["database"] = db

		pg, err := store.NewPostgresStore(db.Pool)
		if err != nil {
			return nil, cleanup, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, cleanup, fmt.Errorf("preparing database schema: %w", err)
		}
		contentStore = pg
	} else {
		slog.Warn("no database configured, saved content is in-memory only")
	}

	var tracker progress.Tracker = progress.NewMemoryTracker()
	if cfg.Cache.URL != "" {
		c, err := cache.Connect(ctx, cfg.Cache)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connecting to cache: %w", err)
		}
		cleanups = append(cleanups, func() { c.Close() })
		checks["cache"] = c
		tracker = progress.NewRedisTracker(c.Client)
	}

	usage := ai.NewInMemoryUsage()

	var fallback ai.Provider
	if cfg.HasFallback() {
		fallback = ai.NewOpenRouterProvider(cfg.AI.OpenRouter.APIKey,
			ai.WithOpenRouterModel(cfg.AI.OpenRouter.Model))
	} else {
		slog.Warn("no fallback provider configured")
	}

	invokers := make(map[generate.Feature]generate.Invoker, len(generate.Features))
	for _, feature := range generate.Features {
		invokers[feature] = ai.NewInvoker(ai.InvokerConfig{
			Feature:  string(feature),
			Primary:  ai.NewGeminiProvider(cfg.AI.Gemini.KeyFor(string(feature))),
			Fallback: fallback,
			Model:    cfg.AI.Gemini.Model,
			Usage:    usage,
		})
	}

	// Detection has no key of its own; it rides on the summary key.
	detector := language.NewDetector(ai.NewInvoker(ai.InvokerConfig{
		Feature:  "language-detect",
		Primary:  ai.NewGeminiProvider(cfg.AI.Gemini.KeyFor(string(generate.FeatureSummary))),
		Fallback: fallback,
		Model:    cfg.AI.Gemini.Model,
		Usage:    usage,
	}))

	svc, err := generate.NewService(generate.ServiceConfig{
		Invokers: invokers,
		Detector: detector,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("building generation service: %w", err)
	}

	boards, err := catalog.NewLoader(cfg.CatalogPath)
	if err != nil {
		slog.Warn("board catalog unavailable", "path", cfg.CatalogPath, "error", err)
		boards = nil
	}

	images := imagegen.NewClient(
		imagegen.WithBaseURL(cfg.Image.BaseURL),
		imagegen.WithDimensions(cfg.Image.Width, cfg.Image.Height),
		imagegen.WithDelay(time.Duration(cfg.Image.DelaySeconds)*time.Second),
	)

	handler := api.NewHandler(api.Config{
		Service:   svc,
		Store:     contentStore,
		Tracker:   tracker,
		Images:    images,
		Boards:    boards,
		Usage:     usage,
		TokenHash: cfg.Auth.TokenHash,
		Checks:    checks,
	})

	return handler.Routes(), cleanup, nil
}
