package api

import (
	"fmt"
	"net/http"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/generate"
)

type summaryRequest struct {
	ChapterText string `json:"chapterText"`
	ChapterName string `json:"chapterName"`
	ClassLevel  int    `json:"classLevel"`
}

func (r summaryRequest) validate() error {
	if r.ChapterName == "" {
		return fmt.Errorf("chapterName is required")
	}
	if r.ClassLevel < 1 {
		return fmt.Errorf("classLevel must be at least 1")
	}
	return nil
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.svc.GenerateSummary(r.Context(), req.ChapterText, req.ClassLevel, req.ChapterName)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.GenerateComplete(r.Context(), req.ChapterText, req.ClassLevel, req.ChapterName)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type quizRequest struct {
	Summary  *content.SummaryStructure `json:"summary"`
	Subject  string                    `json:"subject"`
	Language string                    `json:"language,omitempty"`
}

func (h *Handler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Summary == nil {
		writeError(w, http.StatusBadRequest, "summary is required")
		return
	}

	quiz, err := h.svc.GenerateQuiz(r.Context(), req.Summary, req.Subject, req.Language)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

type chapterQuizRequest struct {
	ChapterText string `json:"chapterText"`
	ChapterName string `json:"chapterName"`
	ClassLevel  int    `json:"classLevel"`
	Subject     string `json:"subject"`
}

func (h *Handler) handleQuizFromChapter(w http.ResponseWriter, r *http.Request) {
	var req chapterQuizRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ChapterText == "" {
		writeError(w, http.StatusBadRequest, "chapterText is required")
		return
	}

	quiz, err := h.svc.GenerateQuizFromChapter(r.Context(), req.ChapterText, req.ChapterName, req.ClassLevel, req.Subject)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handler) handleLessonPlan(w http.ResponseWriter, r *http.Request) {
	var req generate.LessonPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if h.boards != nil && req.Board != "" {
		if _, ok := h.boards.GetBoard(req.Board); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown board %q", req.Board))
			return
		}
		if req.Subject != "" && !h.boards.HasSubject(req.Board, req.Subject, req.ClassLevel) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("board %q does not offer %q for class %d", req.Board, req.Subject, req.ClassLevel))
			return
		}
	}

	plan, err := h.svc.GenerateLessonPlan(r.Context(), req)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) handlePresentation(w http.ResponseWriter, r *http.Request) {
	var req generate.PresentationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pres, err := h.svc.GeneratePresentation(r.Context(), req)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pres)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	var req generate.ActivityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	activity, err := h.svc.GenerateActivity(r.Context(), req)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}
