package dashboard

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/dashboard/internal/dto"
	"github.com/GlebRadaev/dashboard/internal/service/dashboardservice"
	"github.com/GlebRadaev/dashboard/pkg/auth"
	"github.com/GlebRadaev/dashboard/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

type Service interface {
	GetOverview(ctx context.Context) *dashboardservice.Overview
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetOverview godoc
//
//	@Summary		Dashboard overview
//	@Description	Summary cards, revenue and the latest invoices. Parts that fail to load show as zero or empty.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Router			/dashboard [get]
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview := h.dashboardService.GetOverview(r.Context())

	response := dto.DashboardResponseDTO{
		Cards: dto.CardsDTO{
			NumberOfCustomers:    overview.Cards.NumberOfCustomers,
			NumberOfInvoices:     overview.Cards.NumberOfInvoices,
			TotalPaidInvoices:    utils.FormatCurrency(overview.Cards.TotalPaid),
			TotalPendingInvoices: utils.FormatCurrency(overview.Cards.TotalPending),
		},
		Revenue:        overview.Revenue,
		LatestInvoices: make([]dto.LatestInvoiceDTO, 0, len(overview.LatestInvoices)),
	}
	if user, ok := auth.UserFromContext(r.Context()); ok {
		response.User = &user
	}
	for _, inv := range overview.LatestInvoices {
		response.LatestInvoices = append(response.LatestInvoices, dto.LatestInvoiceDTO{
			ID:       inv.ID,
			Name:     inv.Name,
			Email:    deref(inv.Email),
			ImageURL: deref(inv.ImageURL),
			Amount:   utils.FormatCurrency(inv.Amount),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
