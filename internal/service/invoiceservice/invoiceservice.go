package invoiceservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/dashboard/internal/domain"
	"github.com/GlebRadaev/dashboard/internal/metrics"
	"github.com/GlebRadaev/dashboard/internal/revalidate"
	"github.com/GlebRadaev/dashboard/pkg/validate"
)

//go:generate mockgen -source=invoiceservice.go -destination=mock_invoiceservice.go -package=invoiceservice

// ListingPath is the view refreshed after every successful mutation.
const ListingPath = "/dashboard/invoices"

const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

const (
	msgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	msgCreateDBError       = "Database Error: Failed to Create Invoice."
	msgUpdateDBError       = "Database Error: Failed to Update Invoice."
	msgDeleteDBError       = "Database Error: Failed to Delete Invoice."
)

var (
	ErrFetchInvoices     = errors.New("Failed to fetch invoices.")
	ErrFetchInvoicePages = errors.New("Failed to fetch total number of invoices.")
	ErrFetchInvoice      = errors.New("Failed to fetch invoice.")
	ErrFetchCustomers    = errors.New("Failed to fetch all customers.")
	ErrInvoiceNotFound   = errors.New("invoice not found")
)

type Repo interface {
	FindFiltered(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error)
	CountPages(ctx context.Context, query string) (int, error)
	FindByID(ctx context.Context, id int) (*domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, inv *domain.Invoice) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type CustomerRepo interface {
	FindAll(ctx context.Context) ([]domain.CustomerField, error)
}

// ActionState is what a failed mutation hands back to the form. Success is a
// nil state.
type ActionState struct {
	Errors  validate.FieldErrors `json:"errors,omitempty"`
	Message string               `json:"message,omitempty"`
}

// InvoiceForm is everything the edit page needs.
type InvoiceForm struct {
	Invoice   *domain.Invoice
	Customers []domain.CustomerField
}

type Service struct {
	repo         Repo
	customerRepo CustomerRepo
	notifier     revalidate.Notifier
	now          func() time.Time
}

func New(repo Repo, customerRepo CustomerRepo, notifier revalidate.Notifier) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (s *Service) GetFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error) {
	invoices, err := s.repo.FindFiltered(ctx, query, page)
	if err != nil {
		zap.L().Error("can't fetch invoices", zap.String("query", query), zap.Int("page", page), zap.Error(err))
		return nil, ErrFetchInvoices
	}
	return invoices, nil
}

func (s *Service) GetInvoicePages(ctx context.Context, query string) (int, error) {
	pages, err := s.repo.CountPages(ctx, query)
	if err != nil {
		zap.L().Error("can't count invoice pages", zap.String("query", query), zap.Error(err))
		return 0, ErrFetchInvoicePages
	}
	return pages, nil
}

func (s *Service) GetInvoiceByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoiceID, err := strconv.Atoi(id)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	invoice, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		zap.L().Error("can't fetch invoice", zap.Int("id", invoiceID), zap.Error(err))
		return nil, ErrFetchInvoice
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

// GetInvoiceForm loads the invoice and the customer choices side by side.
func (s *Service) GetInvoiceForm(ctx context.Context, id string) (*InvoiceForm, error) {
	form := &InvoiceForm{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invoice, err := s.GetInvoiceByID(gctx, id)
		form.Invoice = invoice
		return err
	})
	g.Go(func() error {
		customers, err := s.customerRepo.FindAll(gctx)
		if err != nil {
			zap.L().Error("can't fetch customers", zap.Error(err))
			return ErrFetchCustomers
		}
		form.Customers = customers
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *Service) CreateInvoice(ctx context.Context, form map[string]string) *ActionState {
	input, fieldErrs := validate.InvoiceForm(form)
	if fieldErrs != nil {
		metrics.RecordMutation(actionCreate, metrics.ResultValidation)
		return &ActionState{Errors: fieldErrs, Message: msgCreateMissingFields}
	}

	customerID, err := strconv.Atoi(input.CustomerID)
	if err != nil {
		zap.L().Error("can't create invoice: bad customer id", zap.String("customerId", input.CustomerID), zap.Error(err))
		metrics.RecordMutation(actionCreate, metrics.ResultDBError)
		return &ActionState{Message: msgCreateDBError}
	}

	invoice := &domain.Invoice{
		CustomerID: customerID,
		Amount:     input.Amount,
		Status:     input.Status,
		Date:       s.today(),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		zap.L().Error("can't create invoice", zap.Int("customerId", customerID), zap.Error(err))
		metrics.RecordMutation(actionCreate, metrics.ResultDBError)
		return &ActionState{Message: msgCreateDBError}
	}

	zap.L().Info("invoice created", zap.Int("id", invoice.ID), zap.Int("customerId", customerID))
	metrics.RecordMutation(actionCreate, metrics.ResultOK)
	s.invalidate(ctx)
	return nil
}

func (s *Service) UpdateInvoice(ctx context.Context, id string, form map[string]string) *ActionState {
	input, fieldErrs := validate.InvoiceForm(form)
	if fieldErrs != nil {
		metrics.RecordMutation(actionUpdate, metrics.ResultValidation)
		return &ActionState{Errors: fieldErrs, Message: msgUpdateMissingFields}
	}

	invoiceID, err := strconv.Atoi(id)
	if err != nil {
		zap.L().Error("can't update invoice: bad id", zap.String("id", id), zap.Error(err))
		metrics.RecordMutation(actionUpdate, metrics.ResultDBError)
		return &ActionState{Message: msgUpdateDBError}
	}
	customerID, err := strconv.Atoi(input.CustomerID)
	if err != nil {
		zap.L().Error("can't update invoice: bad customer id", zap.String("customerId", input.CustomerID), zap.Error(err))
		metrics.RecordMutation(actionUpdate, metrics.ResultDBError)
		return &ActionState{Message: msgUpdateDBError}
	}

	invoice := &domain.Invoice{
		ID:         invoiceID,
		CustomerID: customerID,
		Amount:     input.Amount,
		Status:     input.Status,
	}
	rows, err := s.repo.Update(ctx, invoice)
	if err != nil {
		zap.L().Error("can't update invoice", zap.Int("id", invoiceID), zap.Error(err))
		metrics.RecordMutation(actionUpdate, metrics.ResultDBError)
		return &ActionState{Message: msgUpdateDBError}
	}

	zap.L().Info("invoice updated", zap.Int("id", invoiceID), zap.Int64("rows", rows))
	metrics.RecordMutation(actionUpdate, metrics.ResultOK)
	s.invalidate(ctx)
	return nil
}

// DeleteInvoice removes the invoice. A missing id is not an error.
func (s *Service) DeleteInvoice(ctx context.Context, id string) *ActionState {
	invoiceID, err := strconv.Atoi(id)
	if err != nil {
		zap.L().Error("can't delete invoice: bad id", zap.String("id", id), zap.Error(err))
		metrics.RecordMutation(actionDelete, metrics.ResultDBError)
		return &ActionState{Message: msgDeleteDBError}
	}

	rows, err := s.repo.Delete(ctx, invoiceID)
	if err != nil {
		zap.L().Error("can't delete invoice", zap.Int("id", invoiceID), zap.Error(err))
		metrics.RecordMutation(actionDelete, metrics.ResultDBError)
		return &ActionState{Message: msgDeleteDBError}
	}

	zap.L().Info("invoice deleted", zap.Int("id", invoiceID), zap.Int64("rows", rows))
	metrics.RecordMutation(actionDelete, metrics.ResultOK)
	s.invalidate(ctx)
	return nil
}

func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.notifier.Invalidate(ctx, ListingPath); err != nil {
		zap.L().Warn("can't invalidate invoice listing", zap.Error(err))
	}
}
