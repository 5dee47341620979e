// Package seed loads placeholder customers, invoices and a sign-in user.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/pg"
	"github.com/GlebRadaev/dashboard/pkg/auth"
)

//go:generate mockgen -source=seed.go -destination=mock_seed.go -package=seed

type UserRepo interface {
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Result reports what a seeding run inserted.
type Result struct {
	Customers int  `json:"customers"`
	Invoices  int  `json:"invoices"`
	Skipped   bool `json:"skipped"`
}

type Seeder struct {
	db          pg.Database
	txManager   pg.TXManager
	userRepo    UserRepo
	hashService auth.HashServiceInterface
}

func New(db pg.Database, txManager pg.TXManager, userRepo UserRepo, hashService auth.HashServiceInterface) *Seeder {
	return &Seeder{
		db:          db,
		txManager:   txManager,
		userRepo:    userRepo,
		hashService: hashService,
	}
}

// Seed is idempotent. Customers and invoices are only inserted into an empty
// customers table; the user is always upserted.
func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	hashed, err := s.hashService.HashPassword(userPassword)
	if err != nil {
		return nil, fmt.Errorf("can't hash seed password: %w", err)
	}

	result := &Result{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var count int
		if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
			return fmt.Errorf("count customers: %w", err)
		}

		if count > 0 {
			result.Skipped = true
		} else {
			ids := make([]int, len(customers))
			for i, c := range customers {
				err := s.db.QueryRow(ctx,
					"INSERT INTO customers (name, email, image_url) VALUES ($1, $2, $3) RETURNING id",
					c.Name, c.Email, c.ImageURL,
				).Scan(&ids[i])
				if err != nil {
					return fmt.Errorf("insert customer %s: %w", c.Name, err)
				}
				result.Customers++
			}

			for _, inv := range invoices {
				_, err := s.db.Exec(ctx,
					"INSERT INTO invoices (customer_id, amount, status, date) VALUES ($1, $2, $3, $4)",
					ids[inv.Customer], inv.Amount, inv.Status, inv.Date,
				)
				if err != nil {
					return fmt.Errorf("insert invoice: %w", err)
				}
				result.Invoices++
			}
		}

		name := userName
		_, err := s.userRepo.Upsert(ctx, &domain.User{Name: &name, Email: userEmail, Password: hashed})
		return err
	})
	if err != nil {
		zap.L().Error("seeding failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("database seeded",
		zap.Int("customers", result.Customers),
		zap.Int("invoices", result.Invoices),
		zap.Bool("skipped", result.Skipped),
	)
	return result, nil
}
