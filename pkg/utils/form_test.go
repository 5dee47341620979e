package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValues(t *testing.T) {
	body := strings.NewReader("customerId=1&amount=12.50&status=paid&status=pending")
	req := httptest.NewRequest(http.MethodPost, "/dashboard/invoices?amount=99", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := FormValues(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"customerId": "1", "amount": "12.50", "status": "paid"}, form)
}

func TestFormValues_BadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := FormValues(req)
	assert.Error(t, err)
}
