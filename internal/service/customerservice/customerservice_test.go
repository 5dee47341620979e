package customerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dashboard/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestGetCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		service, repo := NewMock(t)
		customers := []domain.CustomerField{{ID: 1, Name: "Balazs Orban"}}
		repo.EXPECT().FindAll(ctx).Return(customers, nil)

		got, err := service.GetCustomers(ctx)
		require.NoError(t, err)
		assert.Equal(t, customers, got)
	})

	t.Run("Failure hides the database error", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindAll(ctx).Return(nil, errors.New("pq: password authentication failed"))

		_, err := service.GetCustomers(ctx)
		assert.ErrorIs(t, err, ErrFetchCustomers)
		assert.NotContains(t, err.Error(), "password")
	})
}

func TestGetFilteredCustomers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		query         string
		prepareMock   func(repo *MockRepo)
		expected      []domain.CustomerTotals
		expectedError error
	}{
		{
			name:  "Success",
			query: "lee",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindFiltered(ctx, "lee").Return([]domain.CustomerTotals{
					{ID: 2, Name: "Lee Robinson", TotalInvoices: 3, TotalPaid: 1000, TotalPending: 250},
				}, nil)
			},
			expected: []domain.CustomerTotals{
				{ID: 2, Name: "Lee Robinson", TotalInvoices: 3, TotalPaid: 1000, TotalPending: 250},
			},
		},
		{
			name:  "Failure",
			query: "",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindFiltered(ctx, "").Return(nil, errors.New("boom"))
			},
			expectedError: ErrFetchCustomerTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := service.GetFilteredCustomers(ctx, tt.query)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
