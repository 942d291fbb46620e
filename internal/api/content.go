package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/export"
	"github.com/xuri/excelize/v2"
)

func (h *Handler) handleSaveContent(w http.ResponseWriter, r *http.Request) {
	var c content.SavedContent
	if !decodeBody(w, r, &c) {
		return
	}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key, err := h.store.Save(r.Context(), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *Handler) handleListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) handleGetContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), r.PathValue("key")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleQuizExport(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	c, err := h.store.Get(r.Context(), key)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if c.Type != content.TypeQuiz {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("content %s is %q, not a quiz", key, c.Type))
		return
	}

	var quiz content.Quiz
	if err := json.Unmarshal(c.Data, &quiz); err != nil {
		writeError(w, http.StatusInternalServerError, "stored quiz is unreadable: "+err.Error())
		return
	}

	f, err := export.QuizWorkbook(&quiz)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	serveWorkbook(w, f, "quiz-"+key+".xlsx")
}

func (h *Handler) handleLessonPlanExport(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	c, err := h.store.Get(r.Context(), key)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if c.Type != content.TypeLessonPlan {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("content %s is %q, not a lesson plan", key, c.Type))
		return
	}

	var plan content.LessonPlan
	if err := json.Unmarshal(c.Data, &plan); err != nil {
		writeError(w, http.StatusInternalServerError, "stored lesson plan is unreadable: "+err.Error())
		return
	}

	f, err := export.LessonPlanWorkbook(&plan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	serveWorkbook(w, f, "lesson-plan-"+key+".xlsx")
}

func serveWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	// Headers are already sent; a write failure can only be logged.
	if err := f.Write(w); err != nil {
		slog.Error("writing workbook", "file", filename, "error", err)
	}
}
