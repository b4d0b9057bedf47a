package dto

import (
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/invoice"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/billyribeiro-ux/fieldforge/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest creates an invoice directly, outside the
// estimate conversion path.
type CreateInvoiceRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	JobID      *string           `json:"job_id,omitempty"`
	LineItems  []LineItemRequest `json:"line_items"`
	Discount   decimal.Decimal   `json:"discount"`
	Notes      *string           `json:"notes,omitempty"`
	DueDate    *time.Time        `json:"due_date,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Discount.IsNegative() {
		return ierr.NewError("discount must not be negative").
			WithHint("Please provide a non negative discount").
			Mark(ierr.ErrValidation)
	}
	for _, item := range r.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RecordPaymentRequest applies money against an invoice
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	TipAmount decimal.Decimal `json:"tip_amount"`
	Method    string          `json:"method" binding:"required"`
	Reference *string         `json:"reference,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return ierr.NewError("payment amount must be positive").
			WithHint("Payment amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if r.TipAmount.IsNegative() {
		return ierr.NewError("tip amount must not be negative").
			WithHint("Tip amount must not be negative").
			Mark(ierr.ErrValidation)
	}
	return types.PaymentMethod(r.Method).Validate()
}

// InvoiceResponse wraps an invoice with its line items
type InvoiceResponse struct {
	*invoice.Invoice
	LineItems []*lineitem.LineItem `json:"line_items,omitempty"`
	Meta      *InvoiceResponseMeta `json:"meta,omitempty"`
}

// InvoiceResponseMeta carries derived information about the last operation
type InvoiceResponseMeta struct {
	InvoiceStatus types.InvoiceStatus `json:"invoice_status,omitempty"`
	AmountDue     *decimal.Decimal    `json:"amount_due,omitempty"`
	PortalToken   string              `json:"portal_token,omitempty"`
}

// ListInvoicesResponse is a paginated list of invoices
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}
