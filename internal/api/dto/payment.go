package dto

import (
	"github.com/billyribeiro-ux/fieldforge/internal/domain/payment"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// RefundPaymentRequest refunds a recorded payment. A nil amount refunds
// the full original amount.
type RefundPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Reason string           `json:"reason" binding:"required"`
}

func (r *RefundPaymentRequest) Validate() error {
	if r.Reason == "" {
		return ierr.NewError("refund reason is required").
			WithHint("Please provide a refund reason").
			Mark(ierr.ErrValidation)
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		return ierr.NewError("refund amount must be positive").
			WithHint("Refund amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PaymentResponse wraps a payment with the resulting invoice state
type PaymentResponse struct {
	*payment.Payment
	Meta *PaymentResponseMeta `json:"meta,omitempty"`
}

// PaymentResponseMeta reports the invoice balance after the operation
type PaymentResponseMeta struct {
	InvoiceStatus types.InvoiceStatus `json:"invoice_status,omitempty"`
	AmountDue     *decimal.Decimal    `json:"amount_due,omitempty"`
}

// ListPaymentsResponse is a paginated list of payments
type ListPaymentsResponse struct {
	Items []*PaymentResponse `json:"items"`
	Total int                `json:"total"`
}
