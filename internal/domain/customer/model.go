package customer

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// Customer holds the denormalized financial aggregates the ledger
// maintains. lifetime_value and outstanding_balance are mutated only
// inside the payment recording transaction.
type Customer struct {
	ID                 string          `db:"id" json:"id"`
	Name               string          `db:"name" json:"name"`
	Email              *string         `db:"email" json:"email,omitempty"`
	Phone              *string         `db:"phone" json:"phone,omitempty"`
	LifetimeValue      decimal.Decimal `db:"lifetime_value" json:"lifetime_value"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance" json:"outstanding_balance"`

	types.BaseModel
}

// Repository persists customers and their payment aggregates
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id string) (*Customer, error)
	// ApplyPaymentTotals adjusts lifetime_value by +amount and
	// outstanding_balance by -amount in the caller's transaction.
	ApplyPaymentTotals(ctx context.Context, customerID string, amount decimal.Decimal) error
}
