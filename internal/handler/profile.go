package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/auth"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/middleware"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// ProfileHandler serves the signed-in user's own profile screen:
// profile edits, password change and the activity log. The identity
// comes from the token claims, never from the request body.
type ProfileHandler struct {
	users    *store.Collection[model.User]
	activity *store.Collection[model.ActivityEntry]
	delay    time.Duration
}

func NewProfileHandler(users *store.Collection[model.User], activity *store.Collection[model.ActivityEntry], delay time.Duration) *ProfileHandler {
	return &ProfileHandler{users: users, activity: activity, delay: delay}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	r.Put("/password", h.ChangePassword)
	r.Get("/activity", h.Activity)
}

func (h *ProfileHandler) currentUser(r *http.Request) (model.User, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return model.User{}, false
	}
	return h.users.Get(claims.UserID)
}

func (h *ProfileHandler) wait() {
	if h.delay > 0 {
		time.Sleep(h.delay)
	}
}

func (h *ProfileHandler) record(userID, action string) {
	h.activity.Insert(model.ActivityEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type profileRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}
	if emailTaken(h.users, req.Email, user.ID) {
		writeValidationError(w, service.FieldErrors{"email": "email already in use"})
		return
	}

	h.wait()

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Bio = req.Bio
	user.Avatar = req.Avatar
	h.users.Replace(user)
	h.record(user.ID, "Updated profile")

	writeJSON(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := service.FieldErrors{}
	if req.CurrentPassword == "" {
		errs["current_password"] = "current password is required"
	}
	if len(req.NewPassword) < 8 {
		errs["new_password"] = "password must be at least 8 characters"
	}
	if req.NewPassword != req.ConfirmPassword {
		errs["confirm_password"] = "passwords do not match"
	}
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		writeValidationError(w, service.FieldErrors{"current_password": "current password is incorrect"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.wait()

	user.PasswordHash = hash
	h.users.Replace(user)
	h.record(user.ID, "Changed password")

	writeJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}

// Activity lists the signed-in user's own log entries, newest first.
func (h *ProfileHandler) Activity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	entries := listing.Filter(h.activity.List(), func(e model.ActivityEntry) bool {
		return e.UserID == user.ID
	})
	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(entries, page, pageSize))
}
