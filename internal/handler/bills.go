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

// BillHandler manages operating-expense bills.
type BillHandler struct {
	bills *store.Collection[model.Bill]
}

func NewBillHandler(bills *store.Collection[model.Bill]) *BillHandler {
	return &BillHandler{bills: bills}
}

func (h *BillHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns one page of bills. Search covers the vendor; status and
// category are exact-match filters combined with AND.
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")
	category := q.Get("category")

	filtered := listing.Filter(h.bills.List(), func(b model.Bill) bool {
		return listing.MatchesSearch(search, b.Vendor, b.ID) &&
			listing.MatchesFilter(status, b.Status) &&
			listing.MatchesFilter(category, b.Category)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type billRequest struct {
	Vendor   string          `json:"vendor"`
	Category string          `json:"category"`
	BillDate string          `json:"bill_date"`
	DueDate  string          `json:"due_date"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

func (req billRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Vendor == "" {
		errs["vendor"] = "vendor is required"
	}
	if req.Amount.IsNegative() {
		errs["amount"] = "amount must not be negative"
	}
	if !enum.ValidBillStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (req billRequest) toModel(id string) model.Bill {
	return model.Bill{
		ID:       id,
		Vendor:   req.Vendor,
		Category: req.Category,
		BillDate: req.BillDate,
		DueDate:  req.DueDate,
		Amount:   req.Amount,
		Status:   req.Status,
	}
}

func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	bill := req.toModel(uuid.NewString())
	h.bills.Insert(bill)
	writeJSON(w, http.StatusCreated, bill)
}

func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	bill := req.toModel(chi.URLParam(r, "id"))
	if !h.bills.Replace(bill) {
		writeError(w, http.StatusNotFound, "bill not found")
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.bills.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "bill not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
