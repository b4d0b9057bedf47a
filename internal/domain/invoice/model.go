package invoice

import (
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is the receivable side of a job. amount_paid + amount_due
// always equals total, amount_due never goes negative, and status is
// paid exactly when amount_due reaches zero. Monetary fields are only
// mutated by payment application and void.
type Invoice struct {
	ID             string              `db:"id" json:"id"`
	InvoiceNumber  string              `db:"invoice_number" json:"invoice_number"`
	CustomerID     string              `db:"customer_id" json:"customer_id"`
	JobID          *string             `db:"job_id" json:"job_id,omitempty"`
	EstimateID     *string             `db:"estimate_id" json:"estimate_id,omitempty"`
	InvoiceStatus  types.InvoiceStatus `db:"invoice_status" json:"invoice_status"`
	Subtotal       decimal.Decimal     `db:"subtotal" json:"subtotal"`
	DiscountAmount decimal.Decimal     `db:"discount_amount" json:"discount_amount"`
	TaxRate        decimal.Decimal     `db:"tax_rate" json:"tax_rate"`
	TaxAmount      decimal.Decimal     `db:"tax_amount" json:"tax_amount"`
	Total          decimal.Decimal     `db:"total" json:"total"`
	AmountPaid     decimal.Decimal     `db:"amount_paid" json:"amount_paid"`
	AmountDue      decimal.Decimal     `db:"amount_due" json:"amount_due"`
	PortalToken    string              `db:"portal_token" json:"-"`
	Notes          *string             `db:"notes" json:"notes,omitempty"`
	DueDate        time.Time           `db:"due_date" json:"due_date"`
	SentAt         *time.Time          `db:"sent_at" json:"sent_at,omitempty"`
	ViewedAt       *time.Time          `db:"viewed_at" json:"viewed_at,omitempty"`
	PaidAt         *time.Time          `db:"paid_at" json:"paid_at,omitempty"`
	VoidedAt       *time.Time          `db:"voided_at" json:"voided_at,omitempty"`

	types.BaseModel
}

// IsSettled reports whether the invoice has no remaining balance
func (i *Invoice) IsSettled() bool {
	return !i.AmountDue.IsPositive()
}

// IsTerminal reports whether the invoice can no longer accept payments
func (i *Invoice) IsTerminal() bool {
	return i.InvoiceStatus == types.InvoiceStatusPaid ||
		i.InvoiceStatus == types.InvoiceStatusVoid
}
