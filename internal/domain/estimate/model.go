package estimate

import (
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// Estimate is a priced proposal sent to a customer. Monetary fields are
// computed once at creation from line items and frozen; total equals
// subtotal minus discount plus tax.
type Estimate struct {
	ID             string               `db:"id" json:"id"`
	EstimateNumber string               `db:"estimate_number" json:"estimate_number"`
	CustomerID     string               `db:"customer_id" json:"customer_id"`
	JobID          *string              `db:"job_id" json:"job_id,omitempty"`
	PropertyID     *string              `db:"property_id" json:"property_id,omitempty"`
	EstimateStatus types.EstimateStatus `db:"estimate_status" json:"estimate_status"`
	Subtotal       decimal.Decimal      `db:"subtotal" json:"subtotal"`
	DiscountAmount decimal.Decimal      `db:"discount_amount" json:"discount_amount"`
	TaxRate        decimal.Decimal      `db:"tax_rate" json:"tax_rate"`
	TaxAmount      decimal.Decimal      `db:"tax_amount" json:"tax_amount"`
	Total          decimal.Decimal      `db:"total" json:"total"`
	PortalToken    string               `db:"portal_token" json:"-"`
	Notes          *string              `db:"notes" json:"notes,omitempty"`
	ValidUntil     *time.Time           `db:"valid_until" json:"valid_until,omitempty"`
	SentAt         *time.Time           `db:"sent_at" json:"sent_at,omitempty"`
	ViewedAt       *time.Time           `db:"viewed_at" json:"viewed_at,omitempty"`
	ApprovedAt     *time.Time           `db:"approved_at" json:"approved_at,omitempty"`
	DeclinedAt     *time.Time           `db:"declined_at" json:"declined_at,omitempty"`
	DeclineReason  *string              `db:"decline_reason" json:"decline_reason,omitempty"`
	Signature      *string              `db:"signature" json:"signature,omitempty"`
	InvoiceID      *string              `db:"invoice_id" json:"invoice_id,omitempty"`

	types.BaseModel
}

// IsApprovable reports whether the customer can still act on the estimate
func (e *Estimate) IsApprovable() bool {
	return e.EstimateStatus == types.EstimateStatusSent ||
		e.EstimateStatus == types.EstimateStatusViewed
}
