package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/pkg/auth"
	"github.com/GlebRadaev/dashboard/pkg/validate"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sessionTTL  time.Duration
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sessionTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Authenticate returns ErrInvalidCredentials for anything the user got wrong.
// Any other error is a failure on our side.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	if err := validate.Credentials(email, password); err != nil {
		zap.L().Info("rejected malformed credentials")
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		zap.L().Info("user not found", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.Password, password); !ok {
		zap.L().Info("password mismatch", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	public := &domain.PublicUser{ID: user.ID, Email: user.Email, Name: user.Email}
	if user.Name != nil && *user.Name != "" {
		public.Name = *user.Name
	}
	zap.L().Info("user successfully authenticated", zap.Int("id", user.ID))
	return public, nil
}

// GenerateToken signs a session token and reports when it expires.
func (s *Service) GenerateToken(user domain.PublicUser) (string, time.Time, error) {
	expiresAt := s.now().Add(s.sessionTTL)

	token, err := s.jwtService.GenerateJWT(user, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
