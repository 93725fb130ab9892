package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/handler"
	"github.com/lumiere-dining/api/internal/store"
)

func setupContactRouters(st *store.Store) (chi.Router, chi.Router) {
	h := handler.NewContactHandler(st.Messages)

	public := chi.NewRouter()
	public.Route("/contact", h.RegisterPublicRoutes)

	admin := chi.NewRouter()
	admin.Route("/messages", h.RegisterAdminRoutes)
	return public, admin
}

func TestSubmitContactMessage(t *testing.T) {
	st := store.New()
	public, admin := setupContactRouters(st)

	rr := doRequest(t, public, "POST", "/contact", map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Private dining",
		"message": "Do you host parties of twelve?",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	list := doRequest(t, admin, "GET", "/messages", nil)
	items := pageItems(t, list)
	if len(items) != 1 {
		t.Fatalf("expected 1 message, got %d", len(items))
	}
}

func TestSubmitContactMessage_RequiresMessage(t *testing.T) {
	st := store.New()
	public, _ := setupContactRouters(st)

	rr := doRequest(t, public, "POST", "/contact", map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if st.Messages.Len() != 0 {
		t.Errorf("rejected message must not be saved")
	}
}
