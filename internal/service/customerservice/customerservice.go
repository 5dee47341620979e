package customerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/domain"
)

//go:generate mockgen -source=customerservice.go -destination=mock_customerservice.go -package=customerservice

var (
	ErrFetchCustomers     = errors.New("Failed to fetch all customers.")
	ErrFetchCustomerTable = errors.New("Failed to fetch customer table.")
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.CustomerField, error)
	FindFiltered(ctx context.Context, search string) ([]domain.CustomerTotals, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetCustomers(ctx context.Context) ([]domain.CustomerField, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't fetch customers", zap.Error(err))
		return nil, ErrFetchCustomers
	}
	return customers, nil
}

func (s *Service) GetFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerTotals, error) {
	customers, err := s.repo.FindFiltered(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch customer table", zap.String("query", query), zap.Error(err))
		return nil, ErrFetchCustomerTable
	}
	return customers, nil
}
