package invoice

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// Repository persists invoices
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	// GetForUpdate locks the invoice row for the duration of the
	// enclosing transaction. Payment recording reads amount_due through
	// this lock so concurrent payments serialize instead of both
	// passing the overpayment check against a stale balance.
	GetForUpdate(ctx context.Context, id string) (*Invoice, error)
	GetByToken(ctx context.Context, token string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	// UpdateAmounts writes only the payment-derived fields: amount_paid,
	// amount_due, status and paid_at.
	UpdateAmounts(ctx context.Context, inv *Invoice) error
	List(ctx context.Context, filter types.DocumentFilter) ([]*Invoice, error)
}
