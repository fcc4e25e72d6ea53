package resume

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/raghugg/job-hunter/internal/llm"
)

// Handler serves resume analysis. The caller supplies its own provider
// key per request; the server never stores one.
type Handler struct {
	factory llm.Factory
}

func NewHandler(factory llm.Factory) *Handler {
	if factory == nil {
		factory = llm.NewClient
	}
	return &Handler{factory: factory}
}

type analyzeRequest struct {
	ResumeText string `json:"resumeText"`
	JobText    string `json:"jobText"`
	APIKey     string `json:"apiKey"`
	Model      string `json:"model"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Analyze handles POST /api/resume/analyze.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeErr(w, http.StatusBadRequest, "resumeText is required")
		return
	}

	var client llm.Client
	if req.APIKey != "" && req.Model != "" {
		c, err := h.factory(req.Model, req.APIKey)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "unknown model: "+req.Model)
			return
		}
		client = c
	}

	report := NewAnalyzer(client).Analyze(r.Context(), req.ResumeText, req.JobText)
	writeJSON(w, http.StatusOK, report)
}
