package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/dashboard/internal/domain"
)

type ContextKey string

const UserKey ContextKey = "user"

const (
	SessionCookie = "session"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// UserFromContext returns the identity put there by SessionMiddleware.
func UserFromContext(ctx context.Context) (domain.PublicUser, bool) {
	user, ok := ctx.Value(UserKey).(domain.PublicUser)
	return user, ok
}

func SetSessionCookie(w http.ResponseWriter, token string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionUser(r *http.Request, jwtService JWTServiceInterface) (domain.PublicUser, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return domain.PublicUser{}, false
	}
	claims, err := jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return domain.PublicUser{}, false
	}
	return claims.User(), true
}

// SessionMiddleware guards dashboard routes: without a valid session the
// request is redirected to the login page.
func SessionMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sessionUser(r, jwtService)
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RedirectAuthenticated sends users that are already signed in to the dashboard.
func RedirectAuthenticated(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessionUser(r, jwtService); ok {
				http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
