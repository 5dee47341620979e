package dashboardrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/pg"
)

const latestInvoicesLimit = 5

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CardData aggregates counts and paid/pending totals. A missing status counts as paid.
func (r *Repository) CardData(ctx context.Context) (*domain.CardData, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM customers) AS customers,
            COUNT(*) AS invoices,
            COALESCE(SUM(CASE WHEN COALESCE(status, 'paid') = 'paid' THEN amount ELSE 0 END), 0) AS paid,
            COALESCE(SUM(CASE WHEN COALESCE(status, 'paid') = 'pending' THEN amount ELSE 0 END), 0) AS pending
        FROM invoices
    `
	var data domain.CardData
	err := r.db.QueryRow(ctx, query).Scan(&data.NumberOfCustomers, &data.NumberOfInvoices, &data.TotalPaid, &data.TotalPending)
	if err != nil {
		zap.L().Error("can't fetch card data", zap.Error(err))
		return nil, err
	}
	return &data, nil
}

func (r *Repository) LatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	query := `
        SELECT
            i.id,
            c.name,
            NULLIF(c.email, '') AS email,
            NULLIF(c.image_url, '') AS image_url,
            i.amount
        FROM invoices i
        JOIN customers c ON i.customer_id = c.id
        ORDER BY i.id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, latestInvoicesLimit)
	if err != nil {
		zap.L().Error("can't fetch latest invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.LatestInvoice
	for rows.Next() {
		var inv domain.LatestInvoice
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.ImageURL, &inv.Amount); err != nil {
			zap.L().Error("can't scan latest invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate latest invoice rows", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}
