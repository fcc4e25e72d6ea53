package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func taskID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// StateResponse bundles the persisted state with its derived read models
// so the UI renders from a single fetch.
type StateResponse struct {
	Tasks         []Task                  `json:"tasks"`
	History       map[string]HistoryEntry `json:"history"`
	LastDate      string                  `json:"lastDate"`
	LastWeek      string                  `json:"lastWeek"`
	Streak        int                     `json:"streak"`
	LastSevenDays []DayStatus             `json:"lastSevenDays"`
}

func (h *Handler) stateResponse() StateResponse {
	st := h.engine.State()
	return StateResponse{
		Tasks:         st.Tasks,
		History:       st.History,
		LastDate:      st.LastDate,
		LastWeek:      st.LastWeek,
		Streak:        h.engine.Streak(),
		LastSevenDays: h.engine.LastSevenDays(),
	}
}

// GET /api/state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stateResponse())
}

type createTaskRequest struct {
	Label       string    `json:"label"`
	Target      int       `json:"target"`
	Frequency   Frequency `json:"frequency"`
	LinkedView  string    `json:"linkedView"`
	ExternalURL string    `json:"externalUrl"`
}

// POST /api/tasks
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Label == "" {
		writeErr(w, http.StatusBadRequest, "label is required")
		return
	}
	if req.Frequency == "" {
		req.Frequency = FrequencyDaily
	}
	if !req.Frequency.Valid() {
		writeErr(w, http.StatusBadRequest, "frequency must be daily, weekly, or custom")
		return
	}
	t := h.engine.CreateTask(Task{
		Label:       req.Label,
		Target:      req.Target,
		Frequency:   req.Frequency,
		LinkedView:  req.LinkedView,
		ExternalURL: req.ExternalURL,
	})
	writeJSON(w, http.StatusCreated, t)
}

// PATCH /api/tasks/{id}
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var p Patch
	if err := decodeJSON(r, &p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if p.Frequency != nil && !p.Frequency.Valid() {
		writeErr(w, http.StatusBadRequest, "frequency must be daily, weekly, or custom")
		return
	}
	t, err := h.engine.UpdateTask(id, p)
	if err != nil {
		h.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DELETE /api/tasks/{id}
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	if err := h.engine.DeleteTask(id); err != nil {
		h.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// POST /api/tasks/{id}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutation(w, r, h.engine.Toggle)
}

// POST /api/tasks/{id}/increment
func (h *Handler) Increment(w http.ResponseWriter, r *http.Request) {
	h.mutation(w, r, h.engine.Increment)
}

// POST /api/tasks/{id}/decrement
func (h *Handler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.mutation(w, r, h.engine.Decrement)
}

func (h *Handler) mutation(w http.ResponseWriter, r *http.Request, fn func(int) (Task, error)) {
	id, err := taskID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	if _, err := fn(id); err != nil {
		h.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse())
}

// POST /api/tasks/restore-defaults
func (h *Handler) RestoreDefaults(w http.ResponseWriter, r *http.Request) {
	h.engine.RestoreDefaults()
	writeJSON(w, http.StatusOK, h.stateResponse())
}

// POST /api/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.engine.Reset()
	writeJSON(w, http.StatusOK, h.stateResponse())
}

func (h *Handler) writeEngineErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrTaskNotFound) {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}
