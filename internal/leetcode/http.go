package leetcode

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

const defaultDrawSize = 3

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// List handles GET /api/leetcode/problems?difficulty=Easy|Medium|Hard
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if !validDifficulty(difficulty) {
		writeErr(w, http.StatusBadRequest, "unknown difficulty")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"problems": h.catalog.All(difficulty),
	})
}

// Random handles GET /api/leetcode/random?count=3&difficulty=Easy|Medium|Hard
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if !validDifficulty(difficulty) {
		writeErr(w, http.StatusBadRequest, "unknown difficulty")
		return
	}
	count := defaultDrawSize
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeErr(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"problems": h.catalog.Random(count, difficulty),
	})
}

// validDifficulty folds case so the HTTP layer accepts exactly what
// Catalog.All matches.
func validDifficulty(s string) bool {
	switch {
	case s == "",
		strings.EqualFold(s, string(Easy)),
		strings.EqualFold(s, string(Medium)),
		strings.EqualFold(s, string(Hard)):
		return true
	}
	return false
}
