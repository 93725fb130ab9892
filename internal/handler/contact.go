package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// ContactHandler accepts messages from the public contact form and
// lists them for the admin.
type ContactHandler struct {
	messages *store.Collection[model.ContactMessage]
}

func NewContactHandler(messages *store.Collection[model.ContactMessage]) *ContactHandler {
	return &ContactHandler{messages: messages}
}

func (h *ContactHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/", h.Create)
}

func (h *ContactHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Delete("/{id}", h.Delete)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req contactRequest) validate() service.FieldErrors {
	errs := service.FieldErrors{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if req.Message == "" {
		errs["message"] = "message is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	msg := model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	h.messages.Insert(msg)
	writeJSON(w, http.StatusCreated, msg)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	filtered := listing.Filter(h.messages.List(), func(m model.ContactMessage) bool {
		return listing.MatchesSearch(search, m.Name, m.Email, m.Subject)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.messages.Delete(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
