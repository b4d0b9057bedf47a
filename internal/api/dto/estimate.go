package dto

import (
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/validator"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line on an estimate or invoice creation request
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Taxable     *bool           `json:"taxable,omitempty"`
}

// IsTaxable resolves the taxable flag. An omitted flag means the line
// is taxable; callers opt out explicitly.
func (r *LineItemRequest) IsTaxable() bool {
	return r.Taxable == nil || *r.Taxable
}

func (r *LineItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Quantity.IsPositive() {
		return ierr.NewError("quantity must be positive").
			WithHint("Line item quantity must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if r.UnitPrice.IsNegative() {
		return ierr.NewError("unit price must not be negative").
			WithHint("Line item unit price must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CreateEstimateRequest creates a draft estimate with frozen totals
type CreateEstimateRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	JobID      *string           `json:"job_id,omitempty"`
	PropertyID *string           `json:"property_id,omitempty"`
	LineItems  []LineItemRequest `json:"line_items" binding:"required"`
	Discount   decimal.Decimal   `json:"discount"`
	Notes      *string           `json:"notes,omitempty"`
	ValidUntil *time.Time        `json:"valid_until,omitempty"`
}

func (r *CreateEstimateRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if len(r.LineItems) == 0 {
		return ierr.NewError("at least one line item is required").
			WithHint("Please provide at least one line item").
			Mark(ierr.ErrValidation)
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

// ApproveEstimateRequest carries the customer's acceptance
type ApproveEstimateRequest struct {
	Signature *string `json:"signature,omitempty"`
}

// DeclineEstimateRequest carries the customer's rejection
type DeclineEstimateRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// EstimateResponse wraps an estimate with its line items
type EstimateResponse struct {
	*estimate.Estimate
	LineItems []*lineitem.LineItem  `json:"line_items,omitempty"`
	Meta      *EstimateResponseMeta `json:"meta,omitempty"`
}

// EstimateResponseMeta carries derived information about the last operation
type EstimateResponseMeta struct {
	InvoiceID     string `json:"invoice_id,omitempty"`
	JobForwarded  bool   `json:"job_forwarded,omitempty"`
	PortalToken   string `json:"portal_token,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
}

// ListEstimatesResponse is a paginated list of estimates
type ListEstimatesResponse struct {
	Items []*EstimateResponse `json:"items"`
	Total int                 `json:"total"`
}
