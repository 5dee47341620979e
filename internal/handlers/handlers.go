package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/dashboard/docs"
	"github.com/GlebRadaev/dashboard/internal/config"
	authhandlers "github.com/GlebRadaev/dashboard/internal/handlers/auth"
	customershandlers "github.com/GlebRadaev/dashboard/internal/handlers/customers"
	dashboardhandlers "github.com/GlebRadaev/dashboard/internal/handlers/dashboard"
	diaghandlers "github.com/GlebRadaev/dashboard/internal/handlers/diag"
	invoiceshandlers "github.com/GlebRadaev/dashboard/internal/handlers/invoices"
	"github.com/GlebRadaev/dashboard/internal/metrics"
	"github.com/GlebRadaev/dashboard/internal/service"
	"github.com/GlebRadaev/dashboard/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	GetInvoices(w http.ResponseWriter, r *http.Request)
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	EditInvoice(w http.ResponseWriter, r *http.Request)
	UpdateInvoice(w http.ResponseWriter, r *http.Request)
	DeleteInvoice(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	GetCustomers(w http.ResponseWriter, r *http.Request)
}

type DiagHandler interface {
	DBTest(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	DashboardHandler DashboardHandler
	InvoiceHandler   InvoiceHandler
	CustomerHandler  CustomerHandler
	DiagHandler      DiagHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, pinger diaghandlers.Pinger, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		InvoiceHandler:   invoiceshandlers.New(s.InvoiceService),
		CustomerHandler:  customershandlers.New(s.CustomerService),
		DiagHandler:      diaghandlers.New(pinger, s.Seeder, cfg.SeedEnabled, cfg.Database),
		jwtService:       s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Get("/api/db-test", h.DiagHandler.DBTest)
	r.Get("/seed", h.DiagHandler.Seed)

	r.With(auth.RedirectAuthenticated(h.jwtService)).Get(auth.LoginPath, h.AuthHandler.LoginPage)
	r.Post(auth.LoginPath, h.AuthHandler.Login)
	r.Post("/logout", h.AuthHandler.Logout)

	r.Route(auth.DashboardPath, func(r chi.Router) {
		r.Use(auth.SessionMiddleware(h.jwtService))
		r.Get("/", h.DashboardHandler.GetOverview)
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.InvoiceHandler.GetInvoices)
			r.Post("/", h.InvoiceHandler.CreateInvoice)
			r.Get("/{id}/edit", h.InvoiceHandler.EditInvoice)
			r.Post("/{id}", h.InvoiceHandler.UpdateInvoice)
			r.Post("/{id}/delete", h.InvoiceHandler.DeleteInvoice)
		})
		r.Get("/customers", h.CustomerHandler.GetCustomers)
	})

	return r
}
