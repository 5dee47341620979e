package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/dashboard/internal/domain"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

const issuer = "dashboard"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(user domain.PublicUser, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.StandardClaims
}

// User rebuilds the public identity carried by the token.
func (c *Claims) User() domain.PublicUser {
	id, _ := strconv.Atoi(c.Subject)
	return domain.PublicUser{ID: id, Name: c.Name, Email: c.Email}
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(user domain.PublicUser, expirationTime time.Time) (string, error) {
	claims := Claims{
		Name:  user.Name,
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(user.ID),
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Email == "" || claims.Issuer != issuer {
		return nil, ErrInvalidTokenClaims
	}
	if _, err := strconv.Atoi(claims.Subject); err != nil {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
