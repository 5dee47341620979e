package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/dto"
	"github.com/GlebRadaev/dashboard/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/dashboard/pkg/auth"
	"github.com/GlebRadaev/dashboard/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

const (
	msgInvalidCredentials = "Invalid credentials."
	msgSomethingWentWrong = "Something went wrong."
)

type Service interface {
	Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error)
	GenerateToken(user domain.PublicUser) (string, time.Time, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// callbackURL only follows local paths. Browsers read a backslash as a slash
// and drop tabs and newlines, so "/\evil.com" would leave the site.
func callbackURL(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return pkgauth.DashboardPath
	}
	if strings.ContainsAny(raw, "\\\t\r\n") {
		return pkgauth.DashboardPath
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return pkgauth.DashboardPath
	}
	return raw
}

// LoginPage godoc
//
//	@Summary		Login page state
//	@Description	Signed-in users are redirected to the dashboard.
//	@Tags			Auth
//	@Produce		json
//	@Param			callbackUrl	query		string	false	"Where to go after sign-in"
//	@Success		200			{object}	dto.LoginPageResponseDTO
//	@Success		303			{string}	string	"Already signed in"
//	@Router			/login [get]
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginPageResponseDTO{
		CallbackURL: callbackURL(r.URL.Query().Get("callbackUrl")),
	})
}

// Login godoc
//
//	@Summary		Sign in
//	@Description	Verify email and password and start a session cookie.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string	true	"Email"
//	@Param			password	formData	string	true	"Password"
//	@Param			callbackUrl	query		string	false	"Where to go after sign-in"
//	@Success		303			{string}	string	"Signed in"
//	@Success		200			{object}	dto.LoginResponseDTO	"Invalid credentials."
//	@Failure		400			{object}	utils.Response			"Invalid form"
//	@Failure		500			{object}	dto.LoginResponseDTO	"Something went wrong."
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), form["email"], form["password"])
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Message: msgInvalidCredentials})
			return
		}
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.LoginResponseDTO{Message: msgSomethingWentWrong})
		return
	}

	token, expiresAt, err := h.authService.GenerateToken(*user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.LoginResponseDTO{Message: msgSomethingWentWrong})
		return
	}
	pkgauth.SetSessionCookie(w, token, expiresAt, r.TLS != nil)
	http.Redirect(w, r, callbackURL(r.URL.Query().Get("callbackUrl")), http.StatusSeeOther)
}

// Logout godoc
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Success	303	{string}	string	"Signed out"
//	@Router		/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	pkgauth.ClearSessionCookie(w)
	http.Redirect(w, r, pkgauth.LoginPath, http.StatusSeeOther)
}
