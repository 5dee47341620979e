package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/service/dashboardservice"
	"github.com/GlebRadaev/dashboard/pkg/auth"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetOverview(t *testing.T) {
	email := "evil@rabbit.com"

	t.Run("Cards and latest invoices are formatted", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetOverview(gomock.Any()).Return(&dashboardservice.Overview{
			Cards:          domain.CardData{NumberOfCustomers: 6, NumberOfInvoices: 13, TotalPaid: 120000, TotalPending: 4550},
			Revenue:        []domain.Revenue{{Month: "2025-07", Revenue: 2500}},
			LatestInvoices: []domain.LatestInvoice{{ID: 1, Name: "Evil Rabbit", Email: &email, Amount: 15795}},
		})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req = req.WithContext(context.WithValue(req.Context(), auth.UserKey, domain.PublicUser{ID: 1, Name: "User", Email: "user@nextmail.com"}))
		rr := httptest.NewRecorder()
		handler.GetOverview(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"user":{"id":1,"name":"User","email":"user@nextmail.com"},
			"cards":{"numberOfCustomers":6,"numberOfInvoices":13,"totalPaidInvoices":"$1,200.00","totalPendingInvoices":"$45.50"},
			"revenue":[{"month":"2025-07","revenue":2500}],
			"latestInvoices":[{"id":1,"name":"Evil Rabbit","email":"evil@rabbit.com","amount":"$157.95"}]
		}`, rr.Body.String())
	})

	t.Run("Degraded overview renders zeros", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetOverview(gomock.Any()).Return(&dashboardservice.Overview{
			Revenue:        []domain.Revenue{},
			LatestInvoices: []domain.LatestInvoice{},
		})

		rr := httptest.NewRecorder()
		handler.GetOverview(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"cards":{"numberOfCustomers":0,"numberOfInvoices":0,"totalPaidInvoices":"$0.00","totalPendingInvoices":"$0.00"},
			"revenue":[],
			"latestInvoices":[]
		}`, rr.Body.String())
	})
}
