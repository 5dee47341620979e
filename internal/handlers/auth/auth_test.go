package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/dto"
	"github.com/GlebRadaev/dashboard/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/dashboard/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func loginRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin(t *testing.T) {
	user := &domain.PublicUser{ID: 1, Name: "User", Email: "user@nextmail.com"}
	expires := time.Now().Add(time.Hour)
	creds := url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}}

	tests := []struct {
		name             string
		target           string
		prepareMock      func(service *MockService)
		expectedCode     int
		expectedLocation string
		expectedMessage  string
		expectCookie     bool
	}{
		{
			name:   "Successful login redirects to the dashboard",
			target: "/login",
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "user@nextmail.com", "123456").Return(user, nil)
				service.EXPECT().GenerateToken(*user).Return("token", expires, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/dashboard",
			expectCookie:     true,
		},
		{
			name:   "Local callback is honoured",
			target: "/login?callbackUrl=%2Fdashboard%2Finvoices",
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
				service.EXPECT().GenerateToken(*user).Return("token", expires, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/dashboard/invoices",
			expectCookie:     true,
		},
		{
			name:   "Foreign callback is ignored",
			target: "/login?callbackUrl=https%3A%2F%2Fevil.example",
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
				service.EXPECT().GenerateToken(*user).Return("token", expires, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/dashboard",
			expectCookie:     true,
		},
		{
			name:   "Invalid credentials stay in band",
			target: "/login",
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Invalid credentials.",
		},
		{
			name:   "Unexpected failure",
			target: "/login",
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to fetch user: connection refused"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Something went wrong.",
		},
		{
			name:   "Token failure",
			target: "/login",
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
				service.EXPECT().GenerateToken(*user).Return("", time.Time{}, errors.New("signing failed"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Something went wrong.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.Login(rr, loginRequest(tt.target, creds))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
			if tt.expectedMessage != "" {
				var resp dto.LoginResponseDTO
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}

			cookies := rr.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, pkgauth.SessionCookie, cookies[0].Name)
				assert.Equal(t, "token", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestLoginPage(t *testing.T) {
	handler, _ := NewMock(t)

	rr := httptest.NewRecorder()
	handler.LoginPage(rr, httptest.NewRequest(http.MethodGet, "/login?callbackUrl=%2Fdashboard%2Fcustomers", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LoginPageResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "/dashboard/customers", resp.CallbackURL)
}

func TestLogout(t *testing.T) {
	handler, _ := NewMock(t)

	rr := httptest.NewRecorder()
	handler.Logout(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, pkgauth.SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestCallbackURL(t *testing.T) {
	assert.Equal(t, "/dashboard", callbackURL(""))
	assert.Equal(t, "/dashboard", callbackURL("//evil.example"))
	assert.Equal(t, "/dashboard/invoices", callbackURL("/dashboard/invoices"))
	assert.Equal(t, "/dashboard/invoices?page=2", callbackURL("/dashboard/invoices?page=2"))
	assert.Equal(t, "/dashboard", callbackURL("https://evil.example"))
	assert.Equal(t, "/dashboard", callbackURL(`/\evil.example`))
	assert.Equal(t, "/dashboard", callbackURL(`/dashboard\..\evil`))
	assert.Equal(t, "/dashboard", callbackURL("/\t/evil.example"))
	assert.Equal(t, "/dashboard", callbackURL("/\n/evil.example"))
}

func TestLogin_BackslashCallbackStaysLocal(t *testing.T) {
	handler, mockService := NewMock(t)
	user := &domain.PublicUser{ID: 1, Name: "User", Email: "user@nextmail.com"}
	mockService.EXPECT().Authenticate(gomock.Any(), "user@nextmail.com", "123456").Return(user, nil)
	mockService.EXPECT().GenerateToken(*user).Return("token", time.Now().Add(time.Hour), nil)

	creds := url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}}
	rr := httptest.NewRecorder()

	handler.Login(rr, loginRequest("/login?callbackUrl=%2F%5Cevil.example", creds))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
}
