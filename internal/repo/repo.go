package repo

import (
	"github.com/GlebRadaev/dashboard/internal/pg"
	customerrepo "github.com/GlebRadaev/dashboard/internal/repo/customer-repo"
	dashboardrepo "github.com/GlebRadaev/dashboard/internal/repo/dashboard-repo"
	invoicerepo "github.com/GlebRadaev/dashboard/internal/repo/invoice-repo"
	userrepo "github.com/GlebRadaev/dashboard/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo      *userrepo.Repository
	InvoiceRepo   *invoicerepo.Repository
	CustomerRepo  *customerrepo.Repository
	DashboardRepo *dashboardrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		InvoiceRepo:   invoicerepo.New(conn, txManager),
		CustomerRepo:  customerrepo.New(conn),
		DashboardRepo: dashboardrepo.New(conn),
	}
}
