package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/shopspring/decimal"
)

// InvoiceHandler manages invoices. total_amount and balance_due are
// derived server-side on every write; values sent by the client for
// those fields are ignored.
type InvoiceHandler struct {
	invoices *store.Collection[model.Invoice]
}

func NewInvoiceHandler(invoices *store.Collection[model.Invoice]) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

func (h *InvoiceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns one page of invoices. Search covers invoice number,
// customer name and table name; status is an exact-match filter.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")

	filtered := listing.Filter(h.invoices.List(), func(inv model.Invoice) bool {
		return listing.MatchesSearch(search, inv.InvoiceNumber, inv.CustomerName, inv.TableName) &&
			listing.MatchesFilter(status, inv.Status)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.invoices.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

type invoiceRequest struct {
	InvoiceNumber string              `json:"invoice_number"`
	InvoiceDate   string              `json:"invoice_date"`
	DueDate       string              `json:"due_date"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	TableName     string              `json:"table_name"`
	GuestsCount   int                 `json:"guests_count"`
	Notes         string              `json:"notes"`
	Services      []model.ServiceLine `json:"services"`
	Adjustments   []model.Adjustment  `json:"adjustments"`
	PaidAmount    decimal.Decimal     `json:"paid_amount"`
	Status        string              `json:"status"`
}

func (req invoiceRequest) toModel(id string) model.Invoice {
	return model.Invoice{
		ID:            id,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TableName:     req.TableName,
		GuestsCount:   req.GuestsCount,
		Notes:         req.Notes,
		Services:      req.Services,
		Adjustments:   req.Adjustments,
		PaidAmount:    req.PaidAmount,
		Status:        req.Status,
	}
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv := req.toModel(uuid.NewString())
	inv.CreatedAt = time.Now().UTC()
	if errs := service.ValidateInvoice(inv); errs != nil {
		writeValidationError(w, errs)
		return
	}
	service.DeriveInvoice(&inv)

	h.invoices.Insert(inv)
	writeJSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, ok := h.invoices.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	}

	inv := req.toModel(existing.ID)
	inv.CreatedAt = existing.CreatedAt
	if errs := service.ValidateInvoice(inv); errs != nil {
		writeValidationError(w, errs)
		return
	}
	service.DeriveInvoice(&inv)

	h.invoices.Replace(inv)
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.invoices.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
