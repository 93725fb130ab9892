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

// StaffHandler manages staff records. It also backs the public chefs
// page, which shows the active kitchen roster.
type StaffHandler struct {
	staff *store.Collection[model.StaffMember]
}

func NewStaffHandler(staff *store.Collection[model.StaffMember]) *StaffHandler {
	return &StaffHandler{staff: staff}
}

func (h *StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// RegisterPublicRoutes registers the public chefs listing.
func (h *StaffHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.ListChefs)
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	department := q.Get("department")
	status := q.Get("status")

	filtered := listing.Filter(h.staff.List(), func(s model.StaffMember) bool {
		return listing.MatchesSearch(search, s.Name, s.Position, s.Email) &&
			listing.MatchesFilter(department, s.Department) &&
			listing.MatchesFilter(status, s.Status)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

// chefResponse strips employment details from the public listing.
type chefResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Avatar     string   `json:"avatar,omitempty"`
	Skills     []string `json:"skills"`
	Rating     float64  `json:"rating"`
	Experience string   `json:"experience"`
}

// ListChefs returns active kitchen staff for the public chefs page.
func (h *StaffHandler) ListChefs(w http.ResponseWriter, r *http.Request) {
	chefs := []chefResponse{}
	for _, s := range h.staff.List() {
		if s.Department != enum.DepartmentKitchen || s.Status != enum.StaffStatusActive {
			continue
		}
		chefs = append(chefs, chefResponse{
			ID:         s.ID,
			Name:       s.Name,
			Position:   s.Position,
			Avatar:     s.Avatar,
			Skills:     s.Skills,
			Rating:     s.Rating,
			Experience: s.Experience,
		})
	}
	writeJSON(w, http.StatusOK, chefs)
}

type staffRequest struct {
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Schedule   string          `json:"schedule"`
	Status     string          `json:"status"`
	Avatar     string          `json:"avatar"`
	Skills     []string        `json:"skills"`
	Rating     float64         `json:"rating"`
	Experience string          `json:"experience"`
}

func (req staffRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if !enum.ValidDepartment(req.Department) {
		errs["department"] = "invalid department"
	}
	if !enum.ValidStaffStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if req.Salary.IsNegative() {
		errs["salary"] = "salary must not be negative"
	}
	if req.Rating < 0 || req.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (req staffRequest) toModel(id string) model.StaffMember {
	return model.StaffMember{
		ID:         id,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		Schedule:   req.Schedule,
		Status:     req.Status,
		Avatar:     req.Avatar,
		Skills:     req.Skills,
		Rating:     req.Rating,
		Experience: req.Experience,
	}
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	member := req.toModel(uuid.NewString())
	h.staff.Insert(member)
	writeJSON(w, http.StatusCreated, member)
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	member := req.toModel(chi.URLParam(r, "id"))
	if !h.staff.Replace(member) {
		writeError(w, http.StatusNotFound, "staff member not found")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.staff.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "staff member not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
