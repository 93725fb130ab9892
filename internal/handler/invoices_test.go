package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/handler"
	"github.com/lumiere-dining/api/internal/store"
)

func setupInvoiceRouter(st *store.Store) chi.Router {
	r := chi.NewRouter()
	r.Route("/invoices", handler.NewInvoiceHandler(st.Invoices).RegisterRoutes)
	return r
}

func validInvoice() map[string]interface{} {
	return map[string]interface{}{
		"invoice_number": "INV-2024-100",
		"invoice_date":   "2024-03-20",
		"due_date":       "2024-04-03",
		"customer_name":  "Alexandra Smith",
		"table_name":     "Table 4",
		"guests_count":   2,
		"services": []map[string]interface{}{
			{"type": "food", "description": "Tasting menu", "amount": "100", "tax": "10"},
		},
		"adjustments": []map[string]interface{}{
			{"label": "Loyalty discount", "type": "discount", "amount": "20"},
		},
		"paid_amount": "0",
		"status":      enum.InvoiceStatusPending,
	}
}

func TestCreateInvoice_DerivesTotals(t *testing.T) {
	st := store.New()
	router := setupInvoiceRouter(st)

	rr := doRequest(t, router, "POST", "/invoices", validInvoice())
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeMap(t, rr)
	// 100 + 10% tax - 20 discount
	if resp["total_amount"] != "90" {
		t.Errorf("total_amount: got %v, want 90", resp["total_amount"])
	}
	if resp["balance_due"] != "90" {
		t.Errorf("balance_due: got %v, want 90", resp["balance_due"])
	}
}

func TestCreateInvoice_IgnoresClientTotals(t *testing.T) {
	st := store.New()
	router := setupInvoiceRouter(st)

	body := validInvoice()
	body["total_amount"] = "9999"
	body["balance_due"] = "9999"

	rr := doRequest(t, router, "POST", "/invoices", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeMap(t, rr)
	if resp["total_amount"] != "90" {
		t.Errorf("client-sent total must be ignored: got %v, want 90", resp["total_amount"])
	}
}

func TestUpdateInvoice_RecomputesBalance(t *testing.T) {
	st := store.New()
	router := setupInvoiceRouter(st)

	rr := doRequest(t, router, "POST", "/invoices", validInvoice())
	created := decodeMap(t, rr)
	id := created["id"].(string)

	body := validInvoice()
	body["paid_amount"] = "40"
	body["status"] = enum.InvoiceStatusPartiallyPaid

	rr = doRequest(t, router, "PUT", "/invoices/"+id, body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeMap(t, rr)
	if resp["balance_due"] != "50" {
		t.Errorf("balance_due: got %v, want 50", resp["balance_due"])
	}
}

func TestCreateInvoice_ValidationErrors(t *testing.T) {
	st := store.New()
	router := setupInvoiceRouter(st)

	body := validInvoice()
	body["customer_name"] = ""
	body["status"] = "draft"

	rr := doRequest(t, router, "POST", "/invoices", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if st.Invoices.Len() != 0 {
		t.Errorf("rejected invoice must not be saved, store has %d", st.Invoices.Len())
	}
}

func TestListInvoices_StatusFilter(t *testing.T) {
	st := store.New()
	router := setupInvoiceRouter(st)

	paid := validInvoice()
	paid["invoice_number"] = "INV-2024-001"
	paid["status"] = enum.InvoiceStatusPaid
	doRequest(t, router, "POST", "/invoices", paid)

	pending := validInvoice()
	pending["invoice_number"] = "INV-2024-002"
	doRequest(t, router, "POST", "/invoices", pending)

	rr := doRequest(t, router, "GET", "/invoices?status=paid", nil)
	items := pageItems(t, rr)
	if len(items) != 1 {
		t.Fatalf("expected 1 paid invoice, got %d", len(items))
	}
	if got := items[0].(map[string]interface{})["invoice_number"]; got != "INV-2024-001" {
		t.Errorf("invoice_number: got %v, want INV-2024-001", got)
	}
}

func TestDeleteInvoice_NotFound(t *testing.T) {
	st := store.New()
	router := setupInvoiceRouter(st)

	rr := doRequest(t, router, "DELETE", "/invoices/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}
