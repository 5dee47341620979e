package domain

import "time"

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	// InvoiceStatusOverdue is accepted by the schema but never produced by forms.
	InvoiceStatusOverdue = "overdue"
)

type User struct {
	ID       int     `db:"id"`
	Name     *string `db:"name"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
}

// PublicUser is the identity handed out after sign-in. It never carries the hash.
type PublicUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Customer struct {
	ID       int     `db:"id"`
	Name     string  `db:"name"`
	Email    *string `db:"email"`
	ImageURL *string `db:"image_url"`
}

type Invoice struct {
	ID         int       `db:"id"`
	CustomerID int       `db:"customer_id"`
	Amount     int64     `db:"amount"`
	Status     string    `db:"status"`
	Date       time.Time `db:"date"`
}

// InvoiceRow is an invoice joined with its customer, as shown in the listing.
type InvoiceRow struct {
	ID         int
	CustomerID int
	Amount     int64
	Date       time.Time
	Status     string
	Name       string
	Email      string
	ImageURL   string
}

type LatestInvoice struct {
	ID       int
	Name     string
	Email    *string
	ImageURL *string
	Amount   int64
}

type CustomerField struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CustomerTotals struct {
	ID            int
	Name          string
	Email         *string
	ImageURL      *string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// CardData holds the raw dashboard aggregates, amounts in cents.
type CardData struct {
	NumberOfCustomers int64
	NumberOfInvoices  int64
	TotalPaid         int64
	TotalPending      int64
}

type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
