package payment

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// Payment is one application of money against an invoice. Refund is an
// explicit state change on the row, never a deletion; the sum of
// non-refunded payment amounts for an invoice never exceeds its total.
type Payment struct {
	ID             string              `db:"id" json:"id"`
	InvoiceID      string              `db:"invoice_id" json:"invoice_id"`
	CustomerID     string              `db:"customer_id" json:"customer_id"`
	Amount         decimal.Decimal     `db:"amount" json:"amount"`
	TipAmount      decimal.Decimal     `db:"tip_amount" json:"tip_amount"`
	NetAmount      decimal.Decimal     `db:"net_amount" json:"net_amount"`
	Method         types.PaymentMethod `db:"method" json:"method"`
	PaymentStatus  types.PaymentStatus `db:"payment_status" json:"payment_status"`
	Reference      *string             `db:"reference" json:"reference,omitempty"`
	Notes          *string             `db:"notes" json:"notes,omitempty"`
	RefundedAmount *decimal.Decimal    `db:"refunded_amount" json:"refunded_amount,omitempty"`
	RefundReason   *string             `db:"refund_reason" json:"refund_reason,omitempty"`
	RefundedAt     *time.Time          `db:"refunded_at" json:"refunded_at,omitempty"`

	types.BaseModel
}

// Repository persists payments
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
	ListByInvoice(ctx context.Context, invoiceID string) ([]*Payment, error)
	List(ctx context.Context, filter types.QueryFilter) ([]*Payment, error)
}
