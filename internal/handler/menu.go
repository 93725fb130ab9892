package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/shopspring/decimal"
)

// MenuHandler serves the public menu and the admin menu screen off the
// same shared collection.
type MenuHandler struct {
	items *store.Collection[model.MenuItem]
}

func NewMenuHandler(items *store.Collection[model.MenuItem]) *MenuHandler {
	return &MenuHandler{items: items}
}

// RegisterPublicRoutes registers the read-only public menu.
func (h *MenuHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.ListPublic)
}

// RegisterAdminRoutes registers the admin menu screen.
func (h *MenuHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// ListPublic returns all items, optionally narrowed to one category.
// The public page renders the whole menu, so no pagination here.
func (h *MenuHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	items := listing.Filter(h.items.List(), func(m model.MenuItem) bool {
		return listing.MatchesFilter(category, m.Category)
	})
	if items == nil {
		items = []model.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// List is the paginated admin variant with search.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	category := q.Get("category")

	filtered := listing.Filter(h.items.List(), func(m model.MenuItem) bool {
		return listing.MatchesSearch(search, m.Name, m.Description) &&
			listing.MatchesFilter(category, m.Category)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type menuItemRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsGlutenFree bool            `json:"is_gluten_free"`
	IsSpicy      bool            `json:"is_spicy"`
	Image        string          `json:"image"`
}

func (req menuItemRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if req.Price.IsNegative() {
		errs["price"] = "price must not be negative"
	}
	if !enum.ValidMenuCategory(req.Category) {
		errs["category"] = "invalid category"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (req menuItemRequest) toModel(id string) model.MenuItem {
	return model.MenuItem{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		IsVegetarian: req.IsVegetarian,
		IsGlutenFree: req.IsGlutenFree,
		IsSpicy:      req.IsSpicy,
		Image:        req.Image,
	}
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	item := req.toModel(uuid.NewString())
	h.items.Insert(item)
	writeJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	item := req.toModel(chi.URLParam(r, "id"))
	if !h.items.Replace(item) {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.items.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
