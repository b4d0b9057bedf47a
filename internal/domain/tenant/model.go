package tenant

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// Tenant is an isolated organization. It carries the document numbering
// counters and the flat tax rate applied to taxable line items.
type Tenant struct {
	ID                 string          `db:"id" json:"id"`
	Name               string          `db:"name" json:"name"`
	EstimatePrefix     string          `db:"estimate_prefix" json:"estimate_prefix"`
	InvoicePrefix      string          `db:"invoice_prefix" json:"invoice_prefix"`
	EstimateNextNumber int64           `db:"estimate_next_number" json:"estimate_next_number"`
	InvoiceNextNumber  int64           `db:"invoice_next_number" json:"invoice_next_number"`
	TaxRate            decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Status             types.Status    `db:"status" json:"status"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

// Repository persists tenants and hands out document numbers
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	Get(ctx context.Context, id string) (*Tenant, error)
	// NextDocumentNumber atomically increments the tenant counter for
	// the given kind and returns the formatted number, e.g. EST-0007.
	// Increment and read happen in one round trip so concurrent
	// creations within a tenant never collide or skip.
	NextDocumentNumber(ctx context.Context, kind types.DocumentKind) (string, error)
}
