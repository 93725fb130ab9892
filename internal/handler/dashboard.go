package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/shopspring/decimal"
)

// DashboardHandler derives the admin dashboard stats from the store on
// every request; nothing is cached or stored.
type DashboardHandler struct {
	reservations *store.Collection[model.Reservation]
	payments     *store.Collection[model.Payment]
}

func NewDashboardHandler(reservations *store.Collection[model.Reservation], payments *store.Collection[model.Payment]) *DashboardHandler {
	return &DashboardHandler{reservations: reservations, payments: payments}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Stats)
}

type dashboardStats struct {
	TotalReservations int             `json:"total_reservations"`
	TodayReservations int             `json:"today_reservations"`
	TotalGuests       int             `json:"total_guests"`
	WeeklyRevenue     decimal.Decimal `json:"weekly_revenue"`
}

// Stats computes the four dashboard figures. Guests on cancelled
// reservations don't count; weekly revenue is completed payments dated
// within the last seven days.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7)

	stats := dashboardStats{WeeklyRevenue: decimal.Zero}
	for _, res := range h.reservations.List() {
		stats.TotalReservations++
		if res.Date == today {
			stats.TodayReservations++
		}
		if res.Status != enum.ReservationStatusCancelled {
			stats.TotalGuests += res.Guests
		}
	}

	for _, p := range h.payments.List() {
		if p.Status != enum.PaymentStatusCompleted {
			continue
		}
		paidOn, err := time.Parse("2006-01-02", p.Date)
		if err != nil || paidOn.Before(weekAgo) {
			continue
		}
		stats.WeeklyRevenue = stats.WeeklyRevenue.Add(p.Amount)
	}

	writeJSON(w, http.StatusOK, stats)
}
