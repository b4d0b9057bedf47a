package estimate

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// Repository persists estimates. Create writes the document and its
// line items in the caller's transaction.
type Repository interface {
	Create(ctx context.Context, e *Estimate) error
	Get(ctx context.Context, id string) (*Estimate, error)
	// GetByToken resolves a portal token without tenant context; portal
	// access is unauthenticated by design.
	GetByToken(ctx context.Context, token string) (*Estimate, error)
	Update(ctx context.Context, e *Estimate) error
	List(ctx context.Context, filter types.DocumentFilter) ([]*Estimate, error)
}
