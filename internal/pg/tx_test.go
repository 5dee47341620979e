package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerMock(t *testing.T) (*Manager, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return &Manager{pool: mockDB}, mockDB
}

func TestManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		fn        TransactionalFn
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
	}{
		{
			name: "Commit on success",
			fn: func(ctx context.Context) error {
				_, ok := ctx.Value(txKey{}).(pgx.Tx)
				if !ok {
					return errors.New("no transaction in context")
				}
				return nil
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "Rollback on error",
			fn: func(ctx context.Context) error {
				return errors.New("statement failed")
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectErr: true,
		},
		{
			name: "Begin fails",
			fn: func(ctx context.Context) error {
				return nil
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			expectErr: true,
		},
		{
			name: "Commit fails",
			fn: func(ctx context.Context) error {
				return nil
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, mock := newManagerMock(t)
			tt.mockSetup(mock)

			err := manager.Begin(context.Background(), tt.fn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_BeginNested(t *testing.T) {
	manager, mock := newManagerMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
