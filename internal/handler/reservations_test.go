package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/handler"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// --- Shared helpers ---

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeInto(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func pageItems(t *testing.T, rr *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	resp := decodeMap(t, rr)
	items, ok := resp["items"].([]interface{})
	if !ok {
		t.Fatalf("expected items array, got %T", resp["items"])
	}
	return items
}

func newAuthedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// --- Reservations ---

func setupReservationRouter(st *store.Store) (chi.Router, chi.Router) {
	svc := service.NewReservationService(st, nil, 0)
	h := handler.NewReservationHandler(svc, st.Reservations)

	public := chi.NewRouter()
	public.Route("/reservations", h.RegisterPublicRoutes)

	admin := chi.NewRouter()
	admin.Route("/reservations", h.RegisterAdminRoutes)
	return public, admin
}

func validBooking() map[string]interface{} {
	return map[string]interface{}{
		"name":   "Jane Doe",
		"phone":  "555-0100",
		"email":  "jane@example.com",
		"date":   "2025-06-01",
		"time":   "19:00",
		"guests": 2,
	}
}

func TestSubmitReservation_AppearsInAdminList(t *testing.T) {
	st := store.New()
	public, admin := setupReservationRouter(st)

	rr := doRequest(t, public, "POST", "/reservations", validBooking())
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	created := decodeMap(t, rr)
	if created["status"] != enum.ReservationStatusPending {
		t.Errorf("status: got %v, want %q", created["status"], enum.ReservationStatusPending)
	}
	if created["id"] == "" || created["id"] == nil {
		t.Error("expected a generated id")
	}

	list := doRequest(t, admin, "GET", "/reservations", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list status: got %d, want %d", list.Code, http.StatusOK)
	}
	items := pageItems(t, list)
	if len(items) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(items))
	}
	got := items[0].(map[string]interface{})
	if got["name"] != "Jane Doe" {
		t.Errorf("name: got %v, want Jane Doe", got["name"])
	}
}

func TestSubmitReservation_ValidationErrors(t *testing.T) {
	st := store.New()
	public, _ := setupReservationRouter(st)

	booking := validBooking()
	booking["email"] = "not-an-email"
	booking["guests"] = 0

	rr := doRequest(t, public, "POST", "/reservations", booking)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	resp := decodeMap(t, rr)
	fields, ok := resp["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected fields map, got %T", resp["fields"])
	}
	if _, ok := fields["email"]; !ok {
		t.Error("expected an email field error")
	}
	if _, ok := fields["guests"]; !ok {
		t.Error("expected a guests field error")
	}
	if st.Reservations.Len() != 0 {
		t.Errorf("rejected booking must not be saved, store has %d", st.Reservations.Len())
	}
}

func TestListReservations_SearchAndStatusFilter(t *testing.T) {
	st := store.New()
	_, admin := setupReservationRouter(st)

	st.Reservations.Insert(model.Reservation{ID: "1", Name: "Alice Chen", Phone: "111", Email: "alice@x.com", Date: "2024-03-22", Status: enum.ReservationStatusConfirmed})
	st.Reservations.Insert(model.Reservation{ID: "2", Name: "Bob Ray", Phone: "222", Email: "bob@x.com", Date: "2024-03-22", Status: enum.ReservationStatusPending})
	st.Reservations.Insert(model.Reservation{ID: "3", Name: "Alice Wong", Phone: "333", Email: "aw@x.com", Date: "2024-03-23", Status: enum.ReservationStatusPending})

	rr := doRequest(t, admin, "GET", "/reservations?search=alice&status=pending", nil)
	items := pageItems(t, rr)
	if len(items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(items))
	}
	if got := items[0].(map[string]interface{})["id"]; got != "3" {
		t.Errorf("id: got %v, want 3", got)
	}
}

func TestUpdateReservation_NotFound(t *testing.T) {
	st := store.New()
	_, admin := setupReservationRouter(st)

	body := validBooking()
	body["status"] = enum.ReservationStatusConfirmed
	rr := doRequest(t, admin, "PUT", "/reservations/missing", body)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestSetReservationStatus(t *testing.T) {
	st := store.New()
	_, admin := setupReservationRouter(st)
	st.Reservations.Insert(model.Reservation{ID: "1", Name: "Alice", Status: enum.ReservationStatusPending})

	rr := doRequest(t, admin, "PATCH", "/reservations/1/status", map[string]string{"status": enum.ReservationStatusConfirmed})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	saved, _ := st.Reservations.Get("1")
	if saved.Status != enum.ReservationStatusConfirmed {
		t.Errorf("stored status: got %q, want confirmed", saved.Status)
	}
}

func TestSetReservationStatus_RejectsUnknownStatus(t *testing.T) {
	st := store.New()
	_, admin := setupReservationRouter(st)
	st.Reservations.Insert(model.Reservation{ID: "1", Name: "Alice", Status: enum.ReservationStatusPending})

	rr := doRequest(t, admin, "PATCH", "/reservations/1/status", map[string]string{"status": "archived"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDeleteReservation(t *testing.T) {
	st := store.New()
	_, admin := setupReservationRouter(st)
	st.Reservations.Insert(model.Reservation{ID: "1", Name: "Alice", Status: enum.ReservationStatusPending})

	rr := doRequest(t, admin, "DELETE", "/reservations/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if st.Reservations.Len() != 0 {
		t.Errorf("expected empty store, got %d", st.Reservations.Len())
	}

	rr = doRequest(t, admin, "DELETE", "/reservations/1", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second delete: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}
