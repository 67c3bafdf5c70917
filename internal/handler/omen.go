// Package handler contains the HTTP handlers of the backend.
//
// Handlers only speak HTTP: they decode the request, call the interpreter and
// translate the result or error into a response. The interpretation pipeline
// itself lives in internal/interpreter.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/interpreter"
)

// Interpreter is what OmenHandler needs from the interpretation pipeline.
// *interpreter.Interpreter implements it; tests use a mock.
type Interpreter interface {
	Interpret(ctx context.Context, req interpreter.Request) (*interpreter.Response, error)
}

// OmenHandler serves the interpretation endpoint.
type OmenHandler struct {
	interpreter Interpreter
	logger      *slog.Logger
}

// NewOmenHandler creates a new OmenHandler.
func NewOmenHandler(in Interpreter, logger *slog.Logger) *OmenHandler {
	return &OmenHandler{
		interpreter: in,
		logger:      logger,
	}
}

// HandleInterpret handles POST /api/omen.
//
// Request body:
//
//	{"query": "owl", "location": {"latitude": 51.5, "longitude": -0.12}, "spiritualPractice": "Wicca"}
//
// location and spiritualPractice are optional and may be null. query must be
// a JSON string; any other type is rejected as invalid JSON.
//
// Responses:
//
//	200 {"info": {...}, "imageUrl": "..." | null}
//	400 {"error": "Missing query field."}
//	405 Method not allowed (plain text)
//	500 {"error": "..."}
func (h *OmenHandler) HandleInterpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Limit request body to 64KB; a query is a few words.
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req interpreter.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "Invalid JSON in request body."))
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, apperror.ValidationFailed("query", "Missing query field."))
		return
	}

	resp, err := h.interpreter.Interpret(r.Context(), req)
	if err != nil {
		h.logger.Error("interpretation failed",
			slog.String("query", req.Query),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleHealth handles GET /healthz.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
