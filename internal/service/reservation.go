package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
)

// Errors returned by the reservation service.
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

// Broadcaster pushes reservation lifecycle events to connected admin
// dashboards. Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(eventType string, payload any)
}

// ReservationService owns the one store-integrated flow: the public
// booking submission, plus admin edits and status changes.
type ReservationService struct {
	store *store.Store
	hub   Broadcaster
	delay time.Duration
}

// NewReservationService creates a ReservationService. delay is the
// simulated upstream booking latency; pass 0 in tests. hub may be nil.
func NewReservationService(st *store.Store, hub Broadcaster, delay time.Duration) *ReservationService {
	return &ReservationService{store: st, hub: hub, delay: delay}
}

// SubmitRequest is a reservation draft as posted by the booking form.
type SubmitRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// Validate checks the draft field by field. Messages are keyed by the
// JSON field name so the form can place them inline.
func (r SubmitRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Name == "" {
		errs["name"] = "name is required"
	}
	if r.Phone == "" {
		errs["phone"] = "phone is required"
	}
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if r.Date == "" {
		errs["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs["date"] = "date must be YYYY-MM-DD"
	}
	if r.Time == "" {
		errs["time"] = "time is required"
	} else if _, err := time.Parse("15:04", r.Time); err != nil {
		errs["time"] = "time must be HH:MM"
	}
	if r.Guests < 1 {
		errs["guests"] = "at least one guest is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates the draft, waits out the simulated booking latency,
// then commits the reservation as pending and broadcasts it. There is
// no cancellation path: once validation passes the submission always
// completes and always updates the store.
func (s *ReservationService) Submit(ctx context.Context, req SubmitRequest) (model.Reservation, error) {
	if errs := req.Validate(); errs != nil {
		return model.Reservation{}, errs
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	res := model.Reservation{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Status:    enum.ReservationStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Reservations.Insert(res)
	s.broadcast("reservation.created", res)
	return res, nil
}

// Update replaces the reservation with the same id. The status must be
// a valid reservation status; everything else is free-form, matching
// the admin edit dialog.
func (s *ReservationService) Update(res model.Reservation) (model.Reservation, error) {
	if !enum.ValidReservationStatus(res.Status) {
		return model.Reservation{}, ErrInvalidStatus
	}
	existing, ok := s.store.Reservations.Get(res.ID)
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	res.CreatedAt = existing.CreatedAt
	s.store.Reservations.Replace(res)
	s.broadcast("reservation.updated", res)
	return res, nil
}

// SetStatus transitions a reservation to the given status.
func (s *ReservationService) SetStatus(id, status string) (model.Reservation, error) {
	if !enum.ValidReservationStatus(status) {
		return model.Reservation{}, ErrInvalidStatus
	}
	res, ok := s.store.Reservations.Get(id)
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	res.Status = status
	s.store.Reservations.Replace(res)
	s.broadcast("reservation.updated", res)
	return res, nil
}

// Delete removes the reservation from the store.
func (s *ReservationService) Delete(id string) error {
	if !s.store.Reservations.Delete(id) {
		return ErrReservationNotFound
	}
	s.broadcast("reservation.deleted", map[string]string{"id": id})
	return nil
}

func (s *ReservationService) broadcast(eventType string, payload any) {
	if s.hub != nil {
		s.hub.Broadcast(eventType, payload)
	}
}
