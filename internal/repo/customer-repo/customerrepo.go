package customerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindAll lists every customer for the invoice form select box.
func (r *Repository) FindAll(ctx context.Context) ([]domain.CustomerField, error) {
	query := `
        SELECT id, name
        FROM customers
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.CustomerField
	for rows.Next() {
		var c domain.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate customer rows", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

func (r *Repository) FindFiltered(ctx context.Context, search string) ([]domain.CustomerTotals, error) {
	query := `
        SELECT
            c.id,
            c.name,
            NULLIF(c.email, '') AS email,
            NULLIF(c.image_url, '') AS image_url,
            COUNT(i.id) AS total_invoices,
            COALESCE(SUM(CASE WHEN COALESCE(i.status, 'paid') = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
            COALESCE(SUM(CASE WHEN COALESCE(i.status, 'paid') = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid
        FROM customers c
        LEFT JOIN invoices i ON c.id = i.customer_id
        WHERE
            c.name ILIKE $1 OR
            c.email ILIKE $1
        GROUP BY c.id, c.name, c.email, c.image_url
        ORDER BY c.name ASC
    `
	rows, err := r.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		zap.L().Error("can't fetch customer table", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.CustomerTotals
	for rows.Next() {
		var c domain.CustomerTotals
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &c.TotalPending, &c.TotalPaid)
		if err != nil {
			zap.L().Error("can't scan customer totals row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate customer totals rows", zap.Error(err))
		return nil, err
	}
	return customers, nil
}
