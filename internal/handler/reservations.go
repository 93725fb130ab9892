package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
)

// ReservationHandler serves the public booking form and the admin
// reservations screen. All mutations go through the reservation
// service so the websocket feed stays in sync.
type ReservationHandler struct {
	svc          *service.ReservationService
	reservations *store.Collection[model.Reservation]
}

func NewReservationHandler(svc *service.ReservationService, reservations *store.Collection[model.Reservation]) *ReservationHandler {
	return &ReservationHandler{svc: svc, reservations: reservations}
}

// RegisterPublicRoutes registers the booking form endpoint.
func (h *ReservationHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/", h.Create)
}

// RegisterAdminRoutes registers the admin reservations screen.
func (h *ReservationHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/status", h.SetStatus)
	r.Delete("/{id}", h.Delete)
}

// List returns one page of reservations. Search covers name, phone and
// email; status and date are exact-match filters.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")
	date := q.Get("date")

	filtered := listing.Filter(h.reservations.List(), func(res model.Reservation) bool {
		return listing.MatchesSearch(search, res.Name, res.Phone, res.Email) &&
			listing.MatchesFilter(status, res.Status) &&
			listing.MatchesFilter(date, res.Date)
	})

	page, pageSize := pageParams(r)
	writeJSON(w, http.StatusOK, listing.Paginate(filtered, page, pageSize))
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, ok := h.reservations.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Create accepts a reservation draft, runs it through the submit flow
// (validation, simulated booking latency, pending status) and returns
// the committed record.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

type updateReservationRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Status string `json:"status"`
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Update(model.Reservation{
		ID:     chi.URLParam(r, "id"),
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
		Status: req.Status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *ReservationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.SetStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
