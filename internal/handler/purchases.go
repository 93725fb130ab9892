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

// PurchaseHandler manages supplier purchase orders.
type PurchaseHandler struct {
	purchases *store.Collection[model.Purchase]
}

func NewPurchaseHandler(purchases *store.Collection[model.Purchase]) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

func (h *PurchaseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")
	paymentStatus := q.Get("payment_status")

	filtered := listing.Filter(h.purchases.List(), func(p model.Purchase) bool {
		return listing.MatchesSearch(search, p.Supplier, p.ID) &&
			listing.MatchesFilter(status, p.Status) &&
			listing.MatchesFilter(paymentStatus, p.PaymentStatus)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type purchaseRequest struct {
	Supplier      string          `json:"supplier"`
	OrderDate     string          `json:"order_date"`
	DeliveryDate  string          `json:"delivery_date"`
	Items         int             `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
}

func (req purchaseRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Supplier == "" {
		errs["supplier"] = "supplier is required"
	}
	if req.Items < 0 {
		errs["items"] = "item count must not be negative"
	}
	if req.TotalAmount.IsNegative() {
		errs["total_amount"] = "total amount must not be negative"
	}
	if !enum.ValidPurchaseStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if !enum.ValidPurchasePaymentStatus(req.PaymentStatus) {
		errs["payment_status"] = "invalid payment status"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (req purchaseRequest) toModel(id string) model.Purchase {
	return model.Purchase{
		ID:            id,
		Supplier:      req.Supplier,
		OrderDate:     req.OrderDate,
		DeliveryDate:  req.DeliveryDate,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	}
}

func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	purchase := req.toModel(uuid.NewString())
	h.purchases.Insert(purchase)
	writeJSON(w, http.StatusCreated, purchase)
}

func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	purchase := req.toModel(chi.URLParam(r, "id"))
	if !h.purchases.Replace(purchase) {
		writeError(w, http.StatusNotFound, "purchase not found")
		return
	}
	writeJSON(w, http.StatusOK, purchase)
}

func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.purchases.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "purchase not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
