package llm

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

// Factory builds a provider client for a request. Swappable in tests.
type Factory func(model, apiKey string) (Client, error)

// Proxy exposes provider calls over a single same-origin endpoint.
type Proxy struct {
	factory     Factory
	allowOrigin string
	logger      *log.Logger
}

func NewProxy(factory Factory, allowOrigin string, logger *log.Logger) *Proxy {
	if factory == nil {
		factory = NewClient
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Proxy{factory: factory, allowOrigin: allowOrigin, logger: logger}
}

type generateRequest struct {
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

func (p *Proxy) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if p.allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", p.allowOrigin)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Preflight handles OPTIONS /api/llm/generate.
func (p *Proxy) Preflight(w http.ResponseWriter, _ *http.Request) {
	if p.allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", p.allowOrigin)
	}
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /api/llm/generate.
func (p *Proxy) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if req.APIKey == "" || req.Model == "" || req.Prompt == "" {
		p.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "apiKey, model and prompt are required"})
		return
	}

	client, err := p.factory(req.Model, req.APIKey)
	if err != nil {
		if errors.Is(err, ErrUnknownModel) {
			p.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown model: " + req.Model})
			return
		}
		p.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	text, err := client.Generate(r.Context(), req.Prompt)
	if err != nil {
		b, _ := json.Marshal(map[string]any{
			"ts":    time.Now().UTC().Format(time.RFC3339Nano),
			"level": "error",
			"msg":   "llm_generate_failed",
			"model": req.Model,
			"error": err.Error(),
		})
		p.logger.Print(string(b))
		p.writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	p.writeJSON(w, http.StatusOK, generateResponse{Text: text})
}
