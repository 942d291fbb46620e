package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/progress"
)

type slideImageRequest struct {
	Prompt         string `json:"prompt"`
	SlideNumber    int    `json:"slideNumber"`
	PresentationID string `json:"presentationId"`
}

// handleSlideImages generates one slide image and returns its URL.
func (h *Handler) handleSlideImages(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		writeError(w, http.StatusNotFound, "image generation is not configured")
		return
	}
	var req slideImageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	url, err := h.images.GenerateSlideImage(r.Context(), req.Prompt, req.SlideNumber, req.PresentationID)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// handleAttachImages attaches an image to every slide of the deck in the
// body, reporting percentage progress under the path's presentation id.
func (h *Handler) handleAttachImages(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		writeError(w, http.StatusNotFound, "image generation is not configured")
		return
	}
	id := r.PathValue("id")

	var pres content.LecturePresentation
	if !decodeBody(w, r, &pres) {
		return
	}
	if err := pres.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pres.ID = id

	ctx := r.Context()
	err := h.images.AttachImages(ctx, &pres, func(pct int) {
		if err := h.tracker.Set(ctx, id, pct); err != nil {
			slog.Warn("recording image progress", "presentation", id, "error", err)
		}
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, &pres)
}

// progressPollInterval is how often the websocket rereads the tracker.
const progressPollInterval = 500 * time.Millisecond

type progressEvent struct {
	PresentationID string `json:"presentationId"`
	Percent        int    `json:"percent"`
	Done           bool   `json:"done"`
}

// handleProgress streams image-generation progress for a presentation over
// a websocket until the work reaches 100 percent or the client goes away.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept", "presentation", id, "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	last := -1
	ticker := time.NewTicker(progressPollInterval)
	defer ticker.Stop()

	for {
		pct, err := h.tracker.Get(ctx, id)
		if err != nil && !errors.Is(err, progress.ErrUnknown) {
			slog.Warn("reading image progress", "presentation", id, "error", err)
		}
		if err == nil && pct != last {
			last = pct
			ev := progressEvent{PresentationID: id, Percent: pct, Done: pct >= 100}
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				return
			}
			if ev.Done {
				conn.Close(websocket.StatusNormalClosure, "complete")
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
