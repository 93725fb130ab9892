package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
)

// CatalogHandler serves the public gallery page: a read-only set of
// titled images seeded at boot.
type CatalogHandler struct {
	items *store.Collection[model.CatalogItem]
}

func NewCatalogHandler(items *store.Collection[model.CatalogItem]) *CatalogHandler {
	return &CatalogHandler{items: items}
}

func (h *CatalogHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// List returns all entries, optionally narrowed to one category. The
// gallery renders as a whole, so no pagination here.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	items := listing.Filter(h.items.List(), func(c model.CatalogItem) bool {
		return listing.MatchesFilter(category, c.Category)
	})
	if items == nil {
		items = []model.CatalogItem{}
	}
	writeJSON(w, http.StatusOK, items)
}
