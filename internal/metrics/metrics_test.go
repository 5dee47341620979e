package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMutation(t *testing.T) {
	before := testutil.ToFloat64(invoiceMutations.WithLabelValues("create", ResultOK))
	RecordMutation("create", ResultOK)
	RecordMutation("create", ResultOK)
	after := testutil.ToFloat64(invoiceMutations.WithLabelValues("create", ResultOK))

	assert.Equal(t, before+2, after)
}

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/dashboard/invoices/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/dashboard/invoices/{id}/edit", "404"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/42/edit", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/dashboard/invoices/{id}/edit", "404"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	RecordMutation("delete", ResultDBError)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `dashboard_invoice_mutations_total{action="delete",result="db_error"}`))
}
