package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// PageHandler serves editable site copy. Pages are a fixed set seeded
// at boot (homepage, about, contact); the admin screen edits them but
// never creates or deletes.
type PageHandler struct {
	pages *store.Collection[model.Page]
}

func NewPageHandler(pages *store.Collection[model.Page]) *PageHandler {
	return &PageHandler{pages: pages}
}

// RegisterPublicRoutes exposes the read-only page copy.
func (h *PageHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
}

// RegisterAdminRoutes adds editing on top of the public reads.
func (h *PageHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
}

func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pages.List())
}

func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

type pageRequest struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeValidationError(w, service.FieldErrors{"title": "title is required"})
		return
	}

	page, ok := h.pages.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	page.Title = req.Title
	page.Subtitle = req.Subtitle
	page.Description = req.Description
	page.LastModified = time.Now().UTC().Format("2006-01-02")

	h.pages.Replace(page)
	writeJSON(w, http.StatusOK, page)
}
