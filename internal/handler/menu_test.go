package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/handler"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/shopspring/decimal"
)

func setupMenuRouters(st *store.Store) (chi.Router, chi.Router) {
	h := handler.NewMenuHandler(st.MenuItems)

	public := chi.NewRouter()
	public.Route("/menu", h.RegisterPublicRoutes)

	admin := chi.NewRouter()
	admin.Route("/menu", h.RegisterAdminRoutes)
	return public, admin
}

func seedMenu(st *store.Store) {
	st.MenuItems.Insert(model.MenuItem{ID: "1", Name: "Truffle Arancini", Price: decimal.NewFromInt(18), Category: enum.MenuCategoryStarters})
	st.MenuItems.Insert(model.MenuItem{ID: "2", Name: "Pan-Seared Halibut", Price: decimal.NewFromInt(45), Category: enum.MenuCategoryMains})
	st.MenuItems.Insert(model.MenuItem{ID: "3", Name: "Champagne Cocktail", Price: decimal.NewFromInt(28), Category: enum.MenuCategoryDrinks})
}

func TestPublicMenu_ReturnsAllItems(t *testing.T) {
	st := store.New()
	seedMenu(st)
	public, _ := setupMenuRouters(st)

	rr := doRequest(t, public, "GET", "/menu", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var items []model.MenuItem
	decodeInto(t, rr, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

func TestPublicMenu_CategoryFilter(t *testing.T) {
	st := store.New()
	seedMenu(st)
	public, _ := setupMenuRouters(st)

	rr := doRequest(t, public, "GET", "/menu?category=mains", nil)

	var items []model.MenuItem
	decodeInto(t, rr, &items)
	if len(items) != 1 || items[0].Name != "Pan-Seared Halibut" {
		t.Fatalf("expected only the halibut, got %+v", items)
	}
}

func TestPublicMenu_EmptyIsJSONArray(t *testing.T) {
	st := store.New()
	public, _ := setupMenuRouters(st)

	rr := doRequest(t, public, "GET", "/menu", nil)
	if got := rr.Body.String(); got != "[]\n" {
		t.Errorf("empty menu body: got %q, want []", got)
	}
}

func TestCreateMenuItem(t *testing.T) {
	st := store.New()
	_, admin := setupMenuRouters(st)

	rr := doRequest(t, admin, "POST", "/menu", map[string]interface{}{
		"name":          "Dark Chocolate Soufflé",
		"description":   "Warm chocolate soufflé",
		"price":         "16",
		"category":      enum.MenuCategoryDesserts,
		"is_vegetarian": true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if st.MenuItems.Len() != 1 {
		t.Fatalf("expected 1 item in store, got %d", st.MenuItems.Len())
	}
}

func TestCreateMenuItem_RejectsBadCategory(t *testing.T) {
	st := store.New()
	_, admin := setupMenuRouters(st)

	rr := doRequest(t, admin, "POST", "/menu", map[string]interface{}{
		"name":     "Mystery Dish",
		"price":    "10",
		"category": "specials",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	resp := decodeMap(t, rr)
	fields := resp["fields"].(map[string]interface{})
	if _, ok := fields["category"]; !ok {
		t.Error("expected a category field error")
	}
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	st := store.New()
	_, admin := setupMenuRouters(st)

	rr := doRequest(t, admin, "PUT", "/menu/missing", map[string]interface{}{
		"name":     "Renamed",
		"price":    "10",
		"category": enum.MenuCategoryMains,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestAdminMenu_SearchPaginates(t *testing.T) {
	st := store.New()
	seedMenu(st)
	_, admin := setupMenuRouters(st)

	rr := doRequest(t, admin, "GET", "/menu?page=1&page_size=2", nil)
	resp := decodeMap(t, rr)
	if resp["total_items"] != float64(3) {
		t.Errorf("total_items: got %v, want 3", resp["total_items"])
	}
	if resp["total_pages"] != float64(2) {
		t.Errorf("total_pages: got %v, want 2", resp["total_pages"])
	}
	if len(resp["items"].([]interface{})) != 2 {
		t.Errorf("expected 2 items on page 1")
	}
}
