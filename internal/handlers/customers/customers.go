package customers

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/dto"
	"github.com/GlebRadaev/dashboard/pkg/utils"
)

//go:generate mockgen -source=customers.go -destination=mock_customers.go -package=customers

type Service interface {
	GetFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerTotals, error)
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetCustomers godoc
//
//	@Summary		Customers table
//	@Description	Customers matching the search by name or email, with invoice totals.
//	@Tags			Customers
//	@Produce		json
//	@Param			query	query		string	false	"Search term"
//	@Success		200		{object}	dto.CustomersResponseDTO
//	@Failure		500		{object}	utils.Response	"Failed to fetch customer table."
//	@Router			/dashboard/customers [get]
func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	customers, err := h.customerService.GetFilteredCustomers(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := dto.CustomersResponseDTO{
		Query:     query,
		Customers: make([]dto.CustomerTableRowDTO, 0, len(customers)),
	}
	for _, c := range customers {
		response.Customers = append(response.Customers, dto.CustomerTableRowDTO{
			ID:            c.ID,
			Name:          c.Name,
			Email:         deref(c.Email),
			ImageURL:      deref(c.ImageURL),
			TotalInvoices: c.TotalInvoices,
			TotalPending:  utils.FormatCurrency(c.TotalPending),
			TotalPaid:     utils.FormatCurrency(c.TotalPaid),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
