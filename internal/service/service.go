package service

import (
	"github.com/GlebRadaev/dashboard/internal/config"
	"github.com/GlebRadaev/dashboard/internal/handlers/auth"
	"github.com/GlebRadaev/dashboard/internal/handlers/customers"
	"github.com/GlebRadaev/dashboard/internal/handlers/dashboard"
	"github.com/GlebRadaev/dashboard/internal/handlers/diag"
	"github.com/GlebRadaev/dashboard/internal/handlers/invoices"
	"github.com/GlebRadaev/dashboard/internal/pg"
	"github.com/GlebRadaev/dashboard/internal/revalidate"
	"github.com/GlebRadaev/dashboard/internal/seed"

	pkgauth "github.com/GlebRadaev/dashboard/pkg/auth"

	"github.com/GlebRadaev/dashboard/internal/repo"
	authservice "github.com/GlebRadaev/dashboard/internal/service/authservice"
	customerservice "github.com/GlebRadaev/dashboard/internal/service/customerservice"
	dashboardservice "github.com/GlebRadaev/dashboard/internal/service/dashboardservice"
	invoiceservice "github.com/GlebRadaev/dashboard/internal/service/invoiceservice"
)

type Services struct {
	AuthService      auth.Service
	InvoiceService   invoices.Service
	CustomerService  customers.Service
	DashboardService dashboard.Service
	Seeder           diag.Seeder
	JWTService       pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, db pg.Database, txManager pg.TXManager, notifier revalidate.Notifier) *Services {
	hashService := &pkgauth.HashService{}
	jwtService := pkgauth.NewJWTService(cfg.AuthSecret)

	return &Services{
		AuthService:      authservice.New(repo.UserRepo, hashService, jwtService, cfg.SessionTTL),
		InvoiceService:   invoiceservice.New(repo.InvoiceRepo, repo.CustomerRepo, notifier),
		CustomerService:  customerservice.New(repo.CustomerRepo),
		DashboardService: dashboardservice.New(repo.DashboardRepo),
		Seeder:           seed.New(db, txManager, repo.UserRepo, hashService),
		JWTService:       jwtService,
	}
}
