package apply

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Handler struct {
	repo     Repo
	validate *validator.Validate
}

func NewHandler(repo Repo) *Handler {
	return &Handler{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
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

func (h *Handler) writeRepoErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrContactNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

type createJobRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company" validate:"required,min=1"`
	PostURL     string `json:"postUrl" validate:"omitempty,max=2048"`
	Description string `json:"description"`
	Status      Status `json:"status" validate:"omitempty,oneof=saved applied screen interview offer"`
}

// GET /api/jobs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repo.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// POST /api/jobs
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "title and company are required")
		return
	}
	j, err := h.repo.Create(Job{
		Title:       req.Title,
		Company:     req.Company,
		PostURL:     req.PostURL,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, j)
}

// GET /api/jobs/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	j, err := h.repo.Get(r.PathValue("id"))
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// PATCH /api/jobs/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p Patch
	if err := decodeJSON(r, &p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if p.Status != nil && !p.Status.Valid() {
		writeErr(w, http.StatusBadRequest, "invalid status")
		return
	}
	j, err := h.repo.Update(r.PathValue("id"), p)
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// DELETE /api/jobs/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": r.PathValue("id")})
}

type statusRequest struct {
	Status Status `json:"status" validate:"required,oneof=saved applied screen interview offer"`
}

// POST /api/jobs/{id}/status
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid status")
		return
	}
	j, err := h.repo.Update(r.PathValue("id"), Patch{Status: &req.Status})
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

type contactRequest struct {
	Name     string        `json:"name" validate:"required,min=1"`
	LinkedIn string        `json:"linkedin"`
	Status   ContactStatus `json:"status" validate:"omitempty,oneof=none connected messaged responded"`
}

// POST /api/jobs/{id}/contacts
func (h *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "contact name is required")
		return
	}
	j, err := h.repo.AddContact(r.PathValue("id"), Contact{
		Name:     req.Name,
		LinkedIn: req.LinkedIn,
		Status:   req.Status,
	})
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, j)
}

type contactStatusRequest struct {
	Status ContactStatus `json:"status" validate:"required,oneof=none connected messaged responded"`
}

// PATCH /api/jobs/{id}/contacts/{cid}
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req contactStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid contact status")
		return
	}
	j, err := h.repo.UpdateContact(r.PathValue("id"), r.PathValue("cid"), req.Status)
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// DELETE /api/jobs/{id}/contacts/{cid}
func (h *Handler) RemoveContact(w http.ResponseWriter, r *http.Request) {
	j, err := h.repo.RemoveContact(r.PathValue("id"), r.PathValue("cid"))
	if err != nil {
		h.writeRepoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}
