package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
)

// SettingsHandler serves the four admin settings sections and the
// store backup/restore endpoints. Saves honor the configured
// processing delay the same way the original screens simulated their
// save call.
type SettingsHandler struct {
	store *store.Store
	delay time.Duration
}

func NewSettingsHandler(st *store.Store, delay time.Duration) *SettingsHandler {
	return &SettingsHandler{store: st, delay: delay}
}

func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/restaurant", h.UpdateRestaurant)
	r.Put("/notifications", h.UpdateNotifications)
	r.Put("/security", h.UpdateSecurity)
	r.Put("/integrations", h.UpdateIntegrations)
	r.Get("/backup", h.Backup)
	r.Post("/restore", h.Restore)
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Settings())
}

func (h *SettingsHandler) wait() {
	if h.delay > 0 {
		time.Sleep(h.delay)
	}
}

func (h *SettingsHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	var section model.RestaurantSettings
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.wait()
	settings := h.store.Settings()
	settings.Restaurant = section
	h.store.SetSettings(settings)
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	var section model.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.wait()
	settings := h.store.Settings()
	settings.Notifications = section
	h.store.SetSettings(settings)
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSecurity(w http.ResponseWriter, r *http.Request) {
	var section model.SecuritySettings
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.wait()
	settings := h.store.Settings()
	settings.Security = section
	h.store.SetSettings(settings)
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateIntegrations(w http.ResponseWriter, r *http.Request) {
	var section model.IntegrationSettings
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.wait()
	settings := h.store.Settings()
	settings.Integrations = section
	h.store.SetSettings(settings)
	writeJSON(w, http.StatusOK, settings)
}

// Backup returns the full store snapshot as a downloadable JSON body.
func (h *SettingsHandler) Backup(w http.ResponseWriter, r *http.Request) {
	h.wait()
	w.Header().Set("Content-Disposition", `attachment; filename="lumiere-backup.json"`)
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// Restore replaces the entire store with a previously exported
// snapshot. All collections are swapped at once.
func (h *SettingsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var snap store.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot")
		return
	}

	h.wait()
	h.store.Restore(snap)
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
