package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/handler"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
)

func setupCatalogRouter(st *store.Store) chi.Router {
	r := chi.NewRouter()
	r.Route("/catalog", handler.NewCatalogHandler(st.Catalog).RegisterPublicRoutes)
	return r
}

func seedCatalog(st *store.Store) {
	st.Catalog.Insert(model.CatalogItem{ID: "1", Category: enum.CatalogCategoryDishes, Title: "Wagyu Beef Tartare"})
	st.Catalog.Insert(model.CatalogItem{ID: "2", Category: enum.CatalogCategoryAmbiance, Title: "Dining Room"})
	st.Catalog.Insert(model.CatalogItem{ID: "3", Category: enum.CatalogCategoryEvents, Title: "Private Dining"})
}

func TestCatalog_ReturnsAllEntries(t *testing.T) {
	st := store.New()
	seedCatalog(st)
	router := setupCatalogRouter(st)

	rr := doRequest(t, router, "GET", "/catalog", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var items []model.CatalogItem
	decodeInto(t, rr, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(items))
	}
}

func TestCatalog_CategoryFilter(t *testing.T) {
	st := store.New()
	seedCatalog(st)
	router := setupCatalogRouter(st)

	rr := doRequest(t, router, "GET", "/catalog?category=ambiance", nil)

	var items []model.CatalogItem
	decodeInto(t, rr, &items)
	if len(items) != 1 || items[0].Title != "Dining Room" {
		t.Fatalf("expected only the dining room, got %+v", items)
	}
}

func TestCatalog_AllFilterIsNoop(t *testing.T) {
	st := store.New()
	seedCatalog(st)
	router := setupCatalogRouter(st)

	rr := doRequest(t, router, "GET", "/catalog?category=all", nil)

	var items []model.CatalogItem
	decodeInto(t, rr, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(items))
	}
}

func TestCatalog_EmptyIsJSONArray(t *testing.T) {
	st := store.New()
	router := setupCatalogRouter(st)

	rr := doRequest(t, router, "GET", "/catalog", nil)
	if got := rr.Body.String(); got != "[]\n" {
		t.Errorf("empty catalog body: got %q, want []", got)
	}
}
