package invoicerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/pg"
)

var listingColumns = []string{"id", "customer_id", "amount", "date", "status", "name", "email", "image_url"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func passThrough(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRepository_FindFiltered(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		page      int
		mockSetup func()
		expectErr bool
		result    []domain.InvoiceRow
	}{
		{
			name:  "Invoices found on first page",
			query: "acme",
			page:  1,
			mockSetup: func() {
				rows := pgxmock.NewRows(listingColumns).
					AddRow(3, 1, int64(1250), date, "paid", "Acme SpA", "billing@acme.it", "").
					AddRow(2, 1, int64(9900), date, "pending", "Acme SpA", "billing@acme.it", "/acme.png")
				mock.ExpectQuery(regexp.QuoteMeta("FROM invoices i JOIN customers c ON i.customer_id = c.id")).
					WithArgs("%acme%", ItemsPerPage, 0).
					WillReturnRows(rows)
			},
			result: []domain.InvoiceRow{
				{ID: 3, CustomerID: 1, Amount: 1250, Date: date, Status: "paid", Name: "Acme SpA", Email: "billing@acme.it"},
				{ID: 2, CustomerID: 1, Amount: 9900, Date: date, Status: "pending", Name: "Acme SpA", Email: "billing@acme.it", ImageURL: "/acme.png"},
			},
		},
		{
			name:  "Third page uses offset",
			query: "",
			page:  3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY COALESCE(i.date, CURRENT_DATE) DESC, i.id DESC LIMIT $2 OFFSET $3")).
					WithArgs("%%", ItemsPerPage, 12).
					WillReturnRows(pgxmock.NewRows(listingColumns))
			},
			result: nil,
		},
		{
			name:  "Page below one is clamped",
			query: "x",
			page:  0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM invoices i")).
					WithArgs("%x%", ItemsPerPage, 0).
					WillReturnRows(pgxmock.NewRows(listingColumns))
			},
			result: nil,
		},
		{
			name:  "Database error",
			query: "acme",
			page:  1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM invoices i")).
					WithArgs("%acme%", ItemsPerPage, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:  "Scan row error",
			query: "acme",
			page:  1,
			mockSetup: func() {
				rows := pgxmock.NewRows(listingColumns).
					AddRow(3, 1, "invalid_amount", date, "paid", "Acme SpA", "", "")
				mock.ExpectQuery(regexp.QuoteMeta("FROM invoices i")).
					WithArgs("%acme%", ItemsPerPage, 0).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindFiltered(context.Background(), tt.query, tt.page)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountPages(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		count     int64
		dbErr     error
		expectErr bool
		pages     int
	}{
		{name: "Empty table", count: 0, pages: 0},
		{name: "Partial page", count: 5, pages: 1},
		{name: "Exact pages", count: 12, pages: 2},
		{name: "Rounds up", count: 13, pages: 3},
		{name: "Database error", dbErr: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expect := mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM invoices i JOIN customers c")).
				WithArgs("%paid%")
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(tt.count))
			}

			pages, err := repo.CountPages(context.Background(), "paid")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.pages, pages)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM invoices WHERE id = $1")

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Invoice
	}{
		{
			name: "Invoice exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
					AddRow(1, 2, int64(1250), "paid", date)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Invoice{ID: 1, CustomerID: 2, Amount: 1250, Status: "paid", Date: date},
		},
		{
			name: "Invoice does not exist",
			id:   404,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(404).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO invoices (customer_id, amount, status, date) VALUES ($1, $2, $3, $4) RETURNING id")

	t.Run("Create invoice successfully", func(t *testing.T) {
		passThrough(tx)
		mock.ExpectQuery(query).
			WithArgs(1, int64(1250), "paid", date).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

		inv := &domain.Invoice{CustomerID: 1, Amount: 1250, Status: "paid", Date: date}
		err := repo.Create(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, 42, inv.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		passThrough(tx)
		mock.ExpectQuery(query).
			WithArgs(1, int64(1250), "paid", date).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), &domain.Invoice{CustomerID: 1, Amount: 1250, Status: "paid", Date: date})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	query := regexp.QuoteMeta("UPDATE invoices SET customer_id = $1, amount = $2, status = $3 WHERE id = $4")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		affected  int64
	}{
		{
			name: "Invoice updated",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs(2, int64(500), "pending", 7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			affected: 1,
		},
		{
			name: "Missing invoice matches zero rows",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs(2, int64(500), "pending", 7).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			affected: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs(2, int64(500), "pending", 7).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.Update(context.Background(), &domain.Invoice{ID: 7, CustomerID: 2, Amount: 500, Status: "pending"})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, tx := NewMock(t)
	query := regexp.QuoteMeta("DELETE FROM invoices WHERE id = $1")

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		affected  int64
	}{
		{
			name: "Invoice deleted",
			id:   1,
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			affected: 1,
		},
		{
			name: "Non-existent invoice is a no-op",
			id:   999,
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs(999).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			affected: 0,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Transaction error",
			id:   1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("can't begin transaction"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.Delete(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
		})
	}
}
