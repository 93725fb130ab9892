package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/auth"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// UserHandler manages admin accounts. Password hashes never leave the
// server; create requires a password, update keeps the old one unless
// a new password is supplied.
type UserHandler struct {
	users *store.Collection[model.User]
}

func NewUserHandler(users *store.Collection[model.User]) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	role := q.Get("role")
	status := q.Get("status")

	filtered := listing.Filter(h.users.List(), func(u model.User) bool {
		return listing.MatchesSearch(search, u.Name, u.Email) &&
			listing.MatchesFilter(role, u.Role) &&
			listing.MatchesFilter(status, u.Status)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

func (req userRequest) validate(requirePassword bool) service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if !enum.ValidUserRole(req.Role) {
		errs["role"] = "invalid role"
	}
	if !enum.ValidUserStatus(req.Status) {
		errs["status"] = "invalid status"
	}
	if requirePassword && req.Password == "" {
		errs["password"] = "password is required"
	}
	if req.Password != "" && len(req.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// emailTaken reports whether another account already uses the email.
// Shared with the profile handler so a self-service email edit cannot
// collide with an existing account either.
func emailTaken(users *store.Collection[model.User], email, excludeID string) bool {
	for _, u := range users.List() {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(true); errs != nil {
		writeValidationError(w, errs)
		return
	}
	if emailTaken(h.users, req.Email, "") {
		writeValidationError(w, service.FieldErrors{"email": "email already in use"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Bio:          req.Bio,
		Role:         req.Role,
		Avatar:       req.Avatar,
		Status:       req.Status,
		PasswordHash: hash,
		JoinedAt:     time.Now().UTC(),
	}
	h.users.Insert(user)
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(false); errs != nil {
		writeValidationError(w, errs)
		return
	}

	existing, ok := h.users.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if emailTaken(h.users, req.Email, existing.ID) {
		writeValidationError(w, service.FieldErrors{"email": "email already in use"})
		return
	}

	user := existing
	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Bio = req.Bio
	user.Role = req.Role
	user.Avatar = req.Avatar
	user.Status = req.Status
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		user.PasswordHash = hash
	}

	h.users.Replace(user)
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.users.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
