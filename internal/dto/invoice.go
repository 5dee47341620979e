package dto

import "github.com/GlebRadaev/dashboard/internal/domain"

type InvoiceRowDTO struct {
	ID         int    `json:"id" example:"1"`
	CustomerID int    `json:"customerId" example:"3"`
	Name       string `json:"name" example:"Lee Robinson"`
	Email      string `json:"email" example:"lee@robinson.com"`
	ImageURL   string `json:"imageUrl" example:"/customers/lee-robinson.png"`
	Date       string `json:"date" example:"2025-10-15"`
	Amount     string `json:"amount" example:"$12.50"`
	Status     string `json:"status" example:"paid"`
}

type InvoicesResponseDTO struct {
	Query      string          `json:"query" example:"lee"`
	Page       int             `json:"page" example:"1"`
	TotalPages int             `json:"totalPages" example:"3"`
	Invoices   []InvoiceRowDTO `json:"invoices"`
}

type InvoiceDTO struct {
	ID         int     `json:"id" example:"1"`
	CustomerID int     `json:"customerId" example:"3"`
	Amount     float64 `json:"amount" example:"12.5"`
	Status     string  `json:"status" example:"paid"`
}

type InvoiceFormResponseDTO struct {
	Invoice   InvoiceDTO             `json:"invoice"`
	Customers []domain.CustomerField `json:"customers"`
}
