package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnwithai/backend/internal/generate"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/store"
)

// errSuggestion is appended to every generation failure so the client can
// show actionable text without interpreting the error itself.
const errSuggestion = "Please try again. If the problem persists, shorten the chapter text or pick a more specific topic."

type errorEnvelope struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorEnvelope{Error: msg})
}

// writePipelineError maps a generation failure to a status code and the
// suggestion envelope.
func writePipelineError(w http.ResponseWriter, err error) {
	code := http.StatusBadGateway
	var verr *generate.ValidationError
	if errors.As(err, &verr) {
		code = http.StatusUnprocessableEntity
	}
	var shapeErr *normalize.ShapeError
	if errors.As(err, &shapeErr) {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, errorEnvelope{Error: err.Error(), Suggestion: errSuggestion})
}

// writeStoreError maps store failures, distinguishing missing keys.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// decodeBody decodes a JSON request body, rejecting unparseable input with
// a 400 before any pipeline runs.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
