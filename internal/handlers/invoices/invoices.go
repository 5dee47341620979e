package invoices

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/dto"
	"github.com/GlebRadaev/dashboard/internal/service/invoiceservice"
	"github.com/GlebRadaev/dashboard/pkg/utils"
)

//go:generate mockgen -source=invoices.go -destination=mock_invoices.go -package=invoices

const dateLayout = "2006-01-02"

type Service interface {
	GetFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error)
	GetInvoicePages(ctx context.Context, query string) (int, error)
	GetInvoiceForm(ctx context.Context, id string) (*invoiceservice.InvoiceForm, error)
	CreateInvoice(ctx context.Context, form map[string]string) *invoiceservice.ActionState
	UpdateInvoice(ctx context.Context, id string, form map[string]string) *invoiceservice.ActionState
	DeleteInvoice(ctx context.Context, id string) *invoiceservice.ActionState
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

func currentPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// respondAction finishes a mutation: redirect to the listing on success,
// otherwise hand the state back to the form.
func respondAction(w http.ResponseWriter, r *http.Request, state *invoiceservice.ActionState) {
	if state != nil {
		utils.RespondWithJSON(w, http.StatusOK, state)
		return
	}
	http.Redirect(w, r, invoiceservice.ListingPath, http.StatusSeeOther)
}

// GetInvoices godoc
//
//	@Summary		List invoices
//	@Description	Search invoices by customer name, email, amount, date or status. Six per page.
//	@Tags			Invoices
//	@Produce		json
//	@Param			query	query		string	false	"Search term"
//	@Param			page	query		int		false	"Page number, starting at 1"
//	@Success		200		{object}	dto.InvoicesResponseDTO
//	@Failure		500		{object}	utils.Response	"Failed to fetch invoices."
//	@Router			/dashboard/invoices [get]
func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := currentPage(r)

	rows, err := h.invoiceService.GetFilteredInvoices(r.Context(), query, page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	totalPages, err := h.invoiceService.GetInvoicePages(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := dto.InvoicesResponseDTO{
		Query:      query,
		Page:       page,
		TotalPages: totalPages,
		Invoices:   make([]dto.InvoiceRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		response.Invoices = append(response.Invoices, dto.InvoiceRowDTO{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Name:       row.Name,
			Email:      row.Email,
			ImageURL:   row.ImageURL,
			Date:       row.Date.Format(dateLayout),
			Amount:     utils.FormatCurrency(row.Amount),
			Status:     row.Status,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateInvoice godoc
//
//	@Summary		Create an invoice
//	@Description	The date is set by the server. Field errors come back in band.
//	@Tags			Invoices
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			customerId	formData	string	true	"Customer id"
//	@Param			amount		formData	string	true	"Amount in dollars"
//	@Param			status		formData	string	true	"pending or paid"
//	@Success		303			{string}	string						"Redirect to the listing"
//	@Success		200			{object}	invoiceservice.ActionState	"Validation or database error"
//	@Failure		400			{object}	utils.Response				"Invalid form"
//	@Router			/dashboard/invoices [post]
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form")
		return
	}
	respondAction(w, r, h.invoiceService.CreateInvoice(r.Context(), form))
}

// EditInvoice godoc
//
//	@Summary	Invoice edit form
//	@Tags		Invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice id"
//	@Success	200	{object}	dto.InvoiceFormResponseDTO
//	@Failure	404	{object}	utils.Response	"Invoice not found"
//	@Failure	500	{object}	utils.Response	"Failed to fetch invoice."
//	@Router		/dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) EditInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := h.invoiceService.GetInvoiceForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, invoiceservice.ErrInvoiceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.InvoiceFormResponseDTO{
		Invoice: dto.InvoiceDTO{
			ID:         form.Invoice.ID,
			CustomerID: form.Invoice.CustomerID,
			Amount:     utils.FromCents(form.Invoice.Amount),
			Status:     form.Invoice.Status,
		},
		Customers: form.Customers,
	})
}

// UpdateInvoice godoc
//
//	@Summary		Update an invoice
//	@Description	An unknown id updates nothing and still redirects.
//	@Tags			Invoices
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			id			path		string	true	"Invoice id"
//	@Param			customerId	formData	string	true	"Customer id"
//	@Param			amount		formData	string	true	"Amount in dollars"
//	@Param			status		formData	string	true	"pending or paid"
//	@Success		303			{string}	string						"Redirect to the listing"
//	@Success		200			{object}	invoiceservice.ActionState	"Validation or database error"
//	@Failure		400			{object}	utils.Response				"Invalid form"
//	@Router			/dashboard/invoices/{id} [post]
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form")
		return
	}
	respondAction(w, r, h.invoiceService.UpdateInvoice(r.Context(), chi.URLParam(r, "id"), form))
}

// DeleteInvoice godoc
//
//	@Summary	Delete an invoice
//	@Tags		Invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice id"
//	@Success	303	{string}	string						"Redirect to the listing"
//	@Success	200	{object}	invoiceservice.ActionState	"Database error"
//	@Router		/dashboard/invoices/{id}/delete [post]
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	respondAction(w, r, h.invoiceService.DeleteInvoice(r.Context(), chi.URLParam(r, "id")))
}
