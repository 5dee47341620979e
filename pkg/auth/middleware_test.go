package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	valid, _ := jwtService.GenerateJWT(testUser, time.Now().Add(time.Hour))
	expired, _ := jwtService.GenerateJWT(testUser, time.Now().Add(-time.Hour))

	tests := []struct {
		name         string
		cookie       string
		expectedCode int
		expectedLoc  string
	}{
		{name: "No cookie", expectedCode: http.StatusSeeOther, expectedLoc: LoginPath},
		{name: "Garbage cookie", cookie: "garbage", expectedCode: http.StatusSeeOther, expectedLoc: LoginPath},
		{name: "Expired session", cookie: expired, expectedCode: http.StatusSeeOther, expectedLoc: LoginPath},
		{name: "Valid session", cookie: valid, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := UserFromContext(r.Context())
				seen = ok
				assert.Equal(t, testUser, user)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			SessionMiddleware(jwtService)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedLoc, rec.Header().Get("Location"))
			assert.Equal(t, tt.expectedCode == http.StatusOK, seen)
		})
	}
}

func TestRedirectAuthenticated(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	valid, _ := jwtService.GenerateJWT(testUser, time.Now().Add(time.Hour))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous user sees login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RedirectAuthenticated(jwtService)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, LoginPath, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Signed in user goes to dashboard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, LoginPath, nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: valid})
		rec := httptest.NewRecorder()
		RedirectAuthenticated(jwtService)(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, DashboardPath, rec.Header().Get("Location"))
	})
}

func TestSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "token", time.Now().Add(time.Hour), true)
	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, SessionCookie, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
	}

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)
	cookies = rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, "", cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	}
}
