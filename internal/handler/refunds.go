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

type RefundHandler struct {
	refunds *store.Collection[model.Refund]
}

func NewRefundHandler(refunds *store.Collection[model.Refund]) *RefundHandler {
	return &RefundHandler{refunds: refunds}
}

func (h *RefundHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/status", h.SetStatus)
	r.Delete("/{id}", h.Delete)
}

func (h *RefundHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")

	filtered := listing.Filter(h.refunds.List(), func(ref model.Refund) bool {
		return listing.MatchesSearch(search, ref.PaymentReference, ref.CustomerName, ref.Reason) &&
			listing.MatchesFilter(status, ref.Status)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type refundRequest struct {
	PaymentReference string          `json:"payment_reference"`
	CustomerName     string          `json:"customer_name"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           string          `json:"reason"`
	Status           string          `json:"status"`
	RequestDate      string          `json:"request_date"`
}

func (req refundRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.PaymentReference == "" {
		errs["payment_reference"] = "payment reference is required"
	}
	if req.Amount.IsNegative() {
		errs["amount"] = "amount must not be negative"
	}
	if req.Reason == "" {
		errs["reason"] = "reason is required"
	}
	if !enum.ValidRefundStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *RefundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	refund := model.Refund{
		ID:               uuid.NewString(),
		PaymentReference: req.PaymentReference,
		CustomerName:     req.CustomerName,
		Amount:           req.Amount,
		Reason:           req.Reason,
		Status:           req.Status,
		RequestDate:      req.RequestDate,
	}
	if refund.RequestDate == "" {
		refund.RequestDate = time.Now().UTC().Format("2006-01-02")
	}
	h.refunds.Insert(refund)
	writeJSON(w, http.StatusCreated, refund)
}

func (h *RefundHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	existing, ok := h.refunds.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "refund not found")
		return
	}

	refund := existing
	refund.PaymentReference = req.PaymentReference
	refund.CustomerName = req.CustomerName
	refund.Amount = req.Amount
	refund.Reason = req.Reason
	refund.RequestDate = req.RequestDate
	h.applyStatus(&refund, req.Status)

	h.refunds.Replace(refund)
	writeJSON(w, http.StatusOK, refund)
}

// SetStatus moves a refund through its lifecycle. Reaching processed
// stamps the processed date.
func (h *RefundHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !enum.ValidRefundStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	refund, ok := h.refunds.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "refund not found")
		return
	}

	h.applyStatus(&refund, req.Status)
	h.refunds.Replace(refund)
	writeJSON(w, http.StatusOK, refund)
}

func (h *RefundHandler) applyStatus(refund *model.Refund, status string) {
	refund.Status = status
	if status == enum.RefundStatusProcessed && refund.ProcessedDate == "" {
		refund.ProcessedDate = time.Now().UTC().Format("2006-01-02")
	}
}

func (h *RefundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.refunds.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "refund not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
