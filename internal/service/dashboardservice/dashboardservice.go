package dashboardservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/dashboard/internal/domain"
)

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

type Repo interface {
	CardData(ctx context.Context) (*domain.CardData, error)
	LatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error)
}

// Overview is the landing page content. Every part of it is best effort.
type Overview struct {
	Cards          domain.CardData
	Revenue        []domain.Revenue
	LatestInvoices []domain.LatestInvoice
}

// revenue is a fixed placeholder series until a revenue table exists.
var revenue = []domain.Revenue{
	{Month: "2025-07", Revenue: 2500},
	{Month: "2025-08", Revenue: 3100},
	{Month: "2025-09", Revenue: 2800},
	{Month: "2025-10", Revenue: 3350},
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetCardData returns zero cards when the aggregates can't be read.
func (s *Service) GetCardData(ctx context.Context) domain.CardData {
	cards, err := s.repo.CardData(ctx)
	if err != nil || cards == nil {
		zap.L().Error("can't fetch card data, showing zeros", zap.Error(err))
		return domain.CardData{}
	}
	return *cards
}

// GetLatestInvoices returns an empty list when the query fails.
func (s *Service) GetLatestInvoices(ctx context.Context) []domain.LatestInvoice {
	invoices, err := s.repo.LatestInvoices(ctx)
	if err != nil {
		zap.L().Error("can't fetch latest invoices, showing none", zap.Error(err))
		return []domain.LatestInvoice{}
	}
	if invoices == nil {
		return []domain.LatestInvoice{}
	}
	return invoices
}

func (s *Service) GetRevenue(_ context.Context) []domain.Revenue {
	out := make([]domain.Revenue, len(revenue))
	copy(out, revenue)
	return out
}

// GetOverview reads cards and latest invoices concurrently. It never fails.
func (s *Service) GetOverview(ctx context.Context) *Overview {
	overview := &Overview{Revenue: s.GetRevenue(ctx)}

	var g errgroup.Group
	g.Go(func() error {
		overview.Cards = s.GetCardData(ctx)
		return nil
	})
	g.Go(func() error {
		overview.LatestInvoices = s.GetLatestInvoices(ctx)
		return nil
	})
	_ = g.Wait()

	return overview
}
