package dto

type CustomerTableRowDTO struct {
	ID            int    `json:"id" example:"1"`
	Name          string `json:"name" example:"Amy Burns"`
	Email         string `json:"email" example:"amy@burns.com"`
	ImageURL      string `json:"imageUrl" example:"/customers/amy-burns.png"`
	TotalInvoices int64  `json:"totalInvoices" example:"2"`
	TotalPending  string `json:"totalPending" example:"$0.00"`
	TotalPaid     string `json:"totalPaid" example:"$42.90"`
}

type CustomersResponseDTO struct {
	Query     string                `json:"query" example:"amy"`
	Customers []CustomerTableRowDTO `json:"customers"`
}
