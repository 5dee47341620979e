package dto

import "github.com/GlebRadaev/dashboard/internal/domain"

type CardsDTO struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers" example:"6"`
	NumberOfInvoices     int64  `json:"numberOfInvoices" example:"13"`
	TotalPaidInvoices    string `json:"totalPaidInvoices" example:"$1,200.00"`
	TotalPendingInvoices string `json:"totalPendingInvoices" example:"$45.50"`
}

type LatestInvoiceDTO struct {
	ID       int    `json:"id" example:"1"`
	Name     string `json:"name" example:"Evil Rabbit"`
	Email    string `json:"email,omitempty" example:"evil@rabbit.com"`
	ImageURL string `json:"imageUrl,omitempty" example:"/customers/evil-rabbit.png"`
	Amount   string `json:"amount" example:"$157.95"`
}

type DashboardResponseDTO struct {
	User           *domain.PublicUser `json:"user,omitempty"`
	Cards          CardsDTO           `json:"cards"`
	Revenue        []domain.Revenue   `json:"revenue"`
	LatestInvoices []LatestInvoiceDTO `json:"latestInvoices"`
}

type DBTestResponseDTO struct {
	OK      bool   `json:"ok" example:"true"`
	URLHost string `json:"urlHost" example:"db.example.com:5432"`
}

type SeedResponseDTO struct {
	Message   string `json:"message" example:"Database seeded successfully"`
	Customers int    `json:"customers" example:"6"`
	Invoices  int    `json:"invoices" example:"13"`
	Skipped   bool   `json:"skipped" example:"false"`
}
