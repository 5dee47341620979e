package validate

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/dashboard/pkg/utils"
)

const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgInvalidAmount  = "Please enter a valid amount."
	msgAmountPositive = "Amount must be greater than 0."
	msgAmountTooLarge = "Amount is too large."
	msgSelectStatus   = "Please select an invoice status."
)

// MaxAmountCents is the largest amount the invoices.amount INTEGER column holds.
const MaxAmountCents = math.MaxInt32

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// InvoiceInput is a validated invoice form. Amount is in cents.
type InvoiceInput struct {
	CustomerID string
	Amount     int64
	Status     string
}

type invoiceForm struct {
	CustomerID string  `form:"customerId" validate:"required"`
	Amount     float64 `form:"amount"     validate:"gt=0"`
	Status     string  `form:"status"     validate:"oneof=pending paid"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// InvoiceForm coerces raw form values into an InvoiceInput. Either the input
// or a non-empty FieldErrors is returned, never both; every failing field is
// reported.
func InvoiceForm(form map[string]string) (*InvoiceInput, FieldErrors) {
	errs := FieldErrors{}

	f := invoiceForm{
		CustomerID: form[FieldCustomerID],
		Status:     form[FieldStatus],
	}

	amountOK := true
	var cents int64
	if raw := strings.TrimSpace(form[FieldAmount]); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			amountOK = false
			errs.add(FieldAmount, msgInvalidAmount)
		} else {
			f.Amount = amount
			if amount > 0 {
				c, ok := utils.ToCents(amount)
				switch {
				case !ok || c > MaxAmountCents:
					amountOK = false
					errs.add(FieldAmount, msgAmountTooLarge)
				case c < 1:
					amountOK = false
					errs.add(FieldAmount, msgAmountPositive)
				}
				cents = c
			}
		}
	}

	if err := v.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs.add(FieldCustomerID, err.Error())
			return nil, errs
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case FieldCustomerID:
				errs.add(FieldCustomerID, msgSelectCustomer)
			case FieldAmount:
				if amountOK {
					errs.add(FieldAmount, msgAmountPositive)
				}
			case FieldStatus:
				errs.add(FieldStatus, msgSelectStatus)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &InvoiceInput{
		CustomerID: f.CustomerID,
		Amount:     cents,
		Status:     f.Status,
	}, nil
}
