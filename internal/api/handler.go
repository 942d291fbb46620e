// Package api exposes the content generation pipelines, saved-content
// store, and export endpoints over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/learnwithai/backend/internal/catalog"
	"github.com/learnwithai/backend/internal/generate"
	"github.com/learnwithai/backend/internal/imagegen"
	"github.com/learnwithai/backend/internal/progress"
	"github.com/learnwithai/backend/internal/store"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UsageSource exposes accumulated token usage per feature.
type UsageSource interface {
	Snapshot() map[string]int64
	Total() int64
}

// Handler carries the dependencies of every route.
type Handler struct {
	svc     *generate.Service
	store   store.ContentStore
	tracker progress.Tracker
	images  *imagegen.Client
	boards  *catalog.Loader
	usage   UsageSource

	// tokenHash is the bcrypt hash of the accepted bearer token. Empty
	// disables authentication.
	tokenHash string

	// checks run on GET /readyz, keyed by service name.
	checks map[string]HealthChecker
}

// Config collects the handler's dependencies. Svc and Store are required;
// the rest may be nil (the matching routes degrade or 404).
type Config struct {
	Service   *generate.Service
	Store     store.ContentStore
	Tracker   progress.Tracker
	Images    *imagegen.Client
	Boards    *catalog.Loader
	Usage     UsageSource
	TokenHash string
	Checks    map[string]HealthChecker
}

// NewHandler builds the route handler.
func NewHandler(cfg Config) *Handler {
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = progress.NewMemoryTracker()
	}
	return &Handler{
		svc:       cfg.Service,
		store:     cfg.Store,
		tracker:   tracker,
		images:    cfg.Images,
		boards:    cfg.Boards,
		usage:     cfg.Usage,
		tokenHash: cfg.TokenHash,
		checks:    cfg.Checks,
	}
}

// Routes builds the HTTP mux. Health endpoints are unauthenticated;
// everything under /api/v1 goes through the auth middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.HandleFunc("GET /readyz", h.handleReadyz)

	api := http.NewServeMux()
	api.HandleFunc("POST /api/v1/summary", h.handleSummary)
	api.HandleFunc("POST /api/v1/complete", h.handleComplete)
	api.HandleFunc("POST /api/v1/quiz", h.handleQuiz)
	api.HandleFunc("POST /api/v1/quiz/from-chapter", h.handleQuizFromChapter)
	api.HandleFunc("POST /api/v1/lesson-plan", h.handleLessonPlan)
	api.HandleFunc("POST /api/v1/presentation", h.handlePresentation)
	api.HandleFunc("POST /api/v1/activity", h.handleActivity)

	api.HandleFunc("POST /api/v1/images/slide", h.handleSlideImages)
	api.HandleFunc("POST /api/v1/presentations/{id}/images", h.handleAttachImages)
	api.HandleFunc("GET /api/v1/presentations/{id}/progress", h.handleProgress)

	api.HandleFunc("POST /api/v1/content", h.handleSaveContent)
	api.HandleFunc("GET /api/v1/content", h.handleListContent)
	api.HandleFunc("GET /api/v1/content/{key}", h.handleGetContent)
	api.HandleFunc("DELETE /api/v1/content/{key}", h.handleDeleteContent)

	api.HandleFunc("GET /api/v1/quizzes/{key}/export", h.handleQuizExport)
	api.HandleFunc("GET /api/v1/lesson-plans/{key}/export", h.handleLessonPlanExport)

	api.HandleFunc("GET /api/v1/boards", h.handleBoards)
	api.HandleFunc("GET /api/v1/usage", h.handleUsage)

	mux.Handle("/api/v1/", h.requireAuth(api))
	return mux
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ready"}
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check.HealthCheck(r.Context()); err != nil {
			status[name] = err.Error()
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, code, status)
}

func (h *Handler) handleBoards(w http.ResponseWriter, r *http.Request) {
	if h.boards == nil {
		writeError(w, http.StatusNotFound, "board catalog is not configured")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"boards": h.boards.AllBoards()})
}

func (h *Handler) handleUsage(w http.ResponseWriter, r *http.Request) {
	if h.usage == nil {
		writeError(w, http.StatusNotFound, "usage tracking is not configured")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"perFeature":  h.usage.Snapshot(),
		"totalTokens": h.usage.Total(),
	})
}
