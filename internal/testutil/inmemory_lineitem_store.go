package testutil

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// InMemoryLineItemStore implements lineitem.Repository
type InMemoryLineItemStore struct {
	*InMemoryStore[*lineitem.LineItem]
}

// NewInMemoryLineItemStore creates a new in-memory line item repository
func NewInMemoryLineItemStore() *InMemoryLineItemStore {
	return &InMemoryLineItemStore{
		InMemoryStore: NewInMemoryStore[*lineitem.LineItem](),
	}
}

func (s *InMemoryLineItemStore) CreateBulk(ctx context.Context, items []*lineitem.LineItem) error {
	for _, item := range items {
		cp := *item
		if err := s.InMemoryStore.Create(ctx, item.ID, &cp); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create line items").
				Mark(ierr.ErrAlreadyExists)
		}
	}
	return nil
}

func (s *InMemoryLineItemStore) ListByEstimate(ctx context.Context, estimateID string) ([]*lineitem.LineItem, error) {
	return s.list(ctx, func(item *lineitem.LineItem) bool {
		return item.EstimateID != nil && *item.EstimateID == estimateID
	})
}

func (s *InMemoryLineItemStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*lineitem.LineItem, error) {
	return s.list(ctx, func(item *lineitem.LineItem) bool {
		return item.InvoiceID != nil && *item.InvoiceID == invoiceID
	})
}

func (s *InMemoryLineItemStore) list(ctx context.Context, match func(*lineitem.LineItem) bool) ([]*lineitem.LineItem, error) {
	items, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, item *lineitem.LineItem, _ interface{}) bool {
			return item.TenantID == types.GetTenantID(ctx) && match(item)
		},
		func(a, b *lineitem.LineItem) bool {
			if a.SortOrder != b.SortOrder {
				return a.SortOrder < b.SortOrder
			}
			return a.ID < b.ID
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*lineitem.LineItem, 0, len(items))
	for _, item := range items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}
