package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/shopspring/decimal"
)

// PaymentHandler manages recorded payments. The invoice number is
// free-text, not a join against the invoices collection.
type PaymentHandler struct {
	payments *store.Collection[model.Payment]
}

func NewPaymentHandler(payments *store.Collection[model.Payment]) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")
	method := q.Get("method")

	filtered := listing.Filter(h.payments.List(), func(p model.Payment) bool {
		return listing.MatchesSearch(search, p.InvoiceNumber, p.CustomerName, p.Reference) &&
			listing.MatchesFilter(status, p.Status) &&
			listing.MatchesFilter(method, p.Method)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type paymentRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	Reference     string          `json:"reference"`
}

func (req paymentRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.InvoiceNumber == "" {
		errs["invoice_number"] = "invoice number is required"
	}
	if req.Amount.IsNegative() {
		errs["amount"] = "amount must not be negative"
	}
	if !enum.ValidPaymentMethod(req.Method) {
		errs["method"] = "invalid payment method"
	}
	if !enum.ValidPaymentStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (req paymentRequest) toModel(id string) model.Payment {
	return model.Payment{
		ID:            id,
		InvoiceNumber: req.InvoiceNumber,
		CustomerName:  req.CustomerName,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        req.Status,
		Date:          req.Date,
		Reference:     req.Reference,
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	payment := req.toModel(uuid.NewString())
	payment.CreatedAt = time.Now().UTC()
	h.payments.Insert(payment)
	writeJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	existing, ok := h.payments.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}

	payment := req.toModel(existing.ID)
	payment.CreatedAt = existing.CreatedAt
	h.payments.Replace(payment)
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.payments.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
