package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lumiere-dining/api/internal/config"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/handler"
	mw "github.com/lumiere-dining/api/internal/middleware"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/lumiere-dining/api/internal/ws"
)

// New creates a Chi router with the public site surface and the
// authenticated admin surface wired to the shared store.
func New(cfg *config.Config, st *store.Store, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	reservationSvc := service.NewReservationService(st, hub, cfg.ProcessingDelay)

	authHandler := handler.NewAuthHandler(st.Users, cfg.JWTSecret)
	reservationHandler := handler.NewReservationHandler(reservationSvc, st.Reservations)
	menuHandler := handler.NewMenuHandler(st.MenuItems)
	categoryHandler := handler.NewCategoryHandler(st.Categories)
	pageHandler := handler.NewPageHandler(st.Pages)
	staffHandler := handler.NewStaffHandler(st.Staff)
	contactHandler := handler.NewContactHandler(st.Messages)

	// Public site surface
	authHandler.RegisterRoutes(r)
	r.Route("/menu", func(r chi.Router) {
		menuHandler.RegisterPublicRoutes(r)
		r.Route("/categories", categoryHandler.RegisterPublicRoutes)
	})
	r.Route("/pages", pageHandler.RegisterPublicRoutes)
	r.Route("/catalog", handler.NewCatalogHandler(st.Catalog).RegisterPublicRoutes)
	r.Route("/chefs", staffHandler.RegisterPublicRoutes)
	r.Route("/reservations", reservationHandler.RegisterPublicRoutes)
	r.Route("/contact", contactHandler.RegisterPublicRoutes)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/reservations", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Admin surface (requires authentication)
	r.Route("/admin", func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		authHandler.RegisterProtectedRoutes(r)

		r.Route("/dashboard", handler.NewDashboardHandler(st.Reservations, st.Payments).RegisterRoutes)
		r.Route("/reservations", reservationHandler.RegisterAdminRoutes)
		r.Route("/menu", menuHandler.RegisterAdminRoutes)
		r.Route("/categories", categoryHandler.RegisterRoutes)
		r.Route("/invoices", handler.NewInvoiceHandler(st.Invoices).RegisterRoutes)
		r.Route("/bills", handler.NewBillHandler(st.Bills).RegisterRoutes)
		r.Route("/purchases", handler.NewPurchaseHandler(st.Purchases).RegisterRoutes)
		r.Route("/suppliers", handler.NewSupplierHandler(st.Suppliers).RegisterRoutes)
		r.Route("/staff", staffHandler.RegisterRoutes)
		r.Route("/payments", handler.NewPaymentHandler(st.Payments).RegisterRoutes)
		r.Route("/refunds", handler.NewRefundHandler(st.Refunds).RegisterRoutes)
		r.Route("/pages", pageHandler.RegisterAdminRoutes)
		r.Route("/messages", contactHandler.RegisterAdminRoutes)
		r.Route("/profile", handler.NewProfileHandler(st.Users, st.Activity, cfg.ProcessingDelay).RegisterRoutes)

		// Account management and backup are admin-role only.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleAdmin))
			r.Route("/users", handler.NewUserHandler(st.Users).RegisterRoutes)
			r.Route("/settings", handler.NewSettingsHandler(st, cfg.ProcessingDelay).RegisterRoutes)
		})
	})

	return r
}
