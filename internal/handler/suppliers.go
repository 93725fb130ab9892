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
)

type SupplierHandler struct {
	suppliers *store.Collection[model.Supplier]
}

func NewSupplierHandler(suppliers *store.Collection[model.Supplier]) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

func (h *SupplierHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")
	category := q.Get("category")

	filtered := listing.Filter(h.suppliers.List(), func(s model.Supplier) bool {
		return listing.MatchesSearch(search, s.Name, s.ContactPerson, s.Email) &&
			listing.MatchesFilter(status, s.Status) &&
			listing.MatchesFilter(category, s.Category)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type supplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	TotalOrders   int    `json:"total_orders"`
	LastOrderDate string `json:"last_order_date"`
}

func (req supplierRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if !enum.ValidSupplierStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if req.TotalOrders < 0 {
		errs["total_orders"] = "total orders must not be negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (req supplierRequest) toModel(id string) model.Supplier {
	return model.Supplier{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Category:      req.Category,
		Status:        req.Status,
		TotalOrders:   req.TotalOrders,
		LastOrderDate: req.LastOrderDate,
	}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	supplier := req.toModel(uuid.NewString())
	h.suppliers.Insert(supplier)
	writeJSON(w, http.StatusCreated, supplier)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	supplier := req.toModel(chi.URLParam(r, "id"))
	if !h.suppliers.Replace(supplier) {
		writeError(w, http.StatusNotFound, "supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.suppliers.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
