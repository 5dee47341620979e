package dto

import "github.com/GlebRadaev/dashboard/internal/domain"

type LoginPageResponseDTO struct {
	CallbackURL string `json:"callbackUrl" example:"/dashboard"`
}

type LoginResponseDTO struct {
	Message string             `json:"message,omitempty" example:"Invalid credentials."`
	User    *domain.PublicUser `json:"user,omitempty"`
}
