package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// CategoryHandler manages the editable category records used by the
// admin category screen (separate from the fixed menu category enum).
type CategoryHandler struct {
	categories *store.Collection[model.Category]
}

func NewCategoryHandler(categories *store.Collection[model.Category]) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// RegisterPublicRoutes exposes the read-only category listing under
// the public menu.
func (h *CategoryHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.ListPublic)
}

// ListPublic returns all categories unpaginated for the menu page.
func (h *CategoryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.categories.List())
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	filtered := listing.Filter(h.categories.List(), func(c model.Category) bool {
		return listing.MatchesSearch(search, c.Name, c.Description)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Locale      string `json:"locale"`
}

func (req categoryRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	category := model.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Locale:      req.Locale,
	}
	h.categories.Insert(category)
	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	category := model.Category{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Locale:      req.Locale,
	}
	if !h.categories.Replace(category) {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.categories.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
