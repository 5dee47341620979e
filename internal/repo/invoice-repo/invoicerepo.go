package invoicerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/pg"
)

// ItemsPerPage is the fixed page size of the invoices listing.
const ItemsPerPage = 6

const searchPredicate = `
        c.name ILIKE $1 OR
        c.email ILIKE $1 OR
        i.amount::text ILIKE $1 OR
        COALESCE(i.date::text, '') ILIKE $1 OR
        COALESCE(i.status, '') ILIKE $1
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func pattern(query string) string {
	return "%" + query + "%"
}

func (r *Repository) FindFiltered(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage

	sql := `
        SELECT
            i.id,
            i.customer_id,
            i.amount,
            COALESCE(i.date, CURRENT_DATE) AS date,
            COALESCE(i.status, 'paid') AS status,
            c.name,
            COALESCE(c.email, '') AS email,
            COALESCE(c.image_url, '') AS image_url
        FROM invoices i
        JOIN customers c ON i.customer_id = c.id
        WHERE` + searchPredicate + `
        ORDER BY COALESCE(i.date, CURRENT_DATE) DESC, i.id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, sql, pattern(query), ItemsPerPage, offset)
	if err != nil {
		zap.L().Error("can't fetch filtered invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.InvoiceRow
	for rows.Next() {
		var inv domain.InvoiceRow
		err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Date, &inv.Status, &inv.Name, &inv.Email, &inv.ImageURL)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate invoice rows", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

// CountPages returns ceil(matches / ItemsPerPage) for the listing search.
func (r *Repository) CountPages(ctx context.Context, query string) (int, error) {
	sql := `
        SELECT COUNT(*)
        FROM invoices i
        JOIN customers c ON i.customer_id = c.id
        WHERE` + searchPredicate
	var count int64
	if err := r.db.QueryRow(ctx, sql, pattern(query)).Scan(&count); err != nil {
		zap.L().Error("can't count invoices", zap.Error(err))
		return 0, err
	}
	return int((count + ItemsPerPage - 1) / ItemsPerPage), nil
}

// FindByID returns nil, nil when there is no such invoice.
func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Invoice, error) {
	sql := `
        SELECT id, customer_id, amount, COALESCE(status, 'paid'), COALESCE(date, CURRENT_DATE)
        FROM invoices
        WHERE id = $1
    `
	var inv domain.Invoice
	err := r.db.QueryRow(ctx, sql, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find invoice", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) error {
	sql := `
        INSERT INTO invoices (customer_id, amount, status, date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, sql, inv.CustomerID, inv.Amount, inv.Status, inv.Date).Scan(&inv.ID)
		if err != nil {
			zap.L().Error("can't create invoice", zap.Error(err))
			return err
		}
		return nil
	})
}

// Update rewrites customer, amount and status. Matching zero rows is not an error.
func (r *Repository) Update(ctx context.Context, inv *domain.Invoice) (int64, error) {
	sql := `
        UPDATE invoices
        SET customer_id = $1, amount = $2, status = $3
        WHERE id = $4
    `
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, sql, inv.CustomerID, inv.Amount, inv.Status, inv.ID)
		if err != nil {
			zap.L().Error("can't update invoice", zap.Int("id", inv.ID), zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int64, error) {
	sql := `DELETE FROM invoices WHERE id = $1`
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, sql, id)
		if err != nil {
			zap.L().Error("can't delete invoice", zap.Int("id", id), zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
