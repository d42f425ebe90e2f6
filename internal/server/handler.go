package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"moodmate/internal/analysis"
	"moodmate/internal/logging"
	"moodmate/internal/models"
)

const systemPrompt = `You are a caring psychologist who analyzes personal journals to help people better understand their emotions.

Analyze the following journal and return a JSON response with:
- mood: the overall state of mind (string)
- emotions: the emotions identified (array of strings)
- summary: a summary of the analysis (string)
- suggestions: suggestions for improving well-being (array of strings)

Be empathetic, constructive and professional.`

type analyzeRequest struct {
	JournalText string `json:"journalText"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the analysis endpoint. It is stateless: every request
// carries the full journal text and the reply is derived from the model's
// answer alone.
type Handler struct {
	completer Completer
	logger    logging.Logger
}

func NewHandler(completer Completer, logger logging.Logger) *Handler {
	return &Handler{completer: completer, logger: logger}
}

// Routes registers the handler's endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze-journal", h.analyzeJournal)
}

func (h *Handler) analyzeJournal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.JournalText) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "journal text is required"})
		return
	}

	content, err := h.completer.Complete(ctx, systemPrompt,
		"Here is the journal content to analyze:\n\n"+req.JournalText)
	if err != nil {
		h.logger.Error(ctx, "journal analysis failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error analyzing journal"})
		return
	}

	// The model is asked for JSON but is free-form in practice; an
	// unstructured answer still yields a usable result.
	var result models.Analysis
	if err := json.Unmarshal([]byte(content), &result); err != nil || result.Mood == "" {
		result = *analysis.BestEffort(content)
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
