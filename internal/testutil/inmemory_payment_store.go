package testutil

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/payment"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
}

// NewInMemoryPaymentStore creates a new in-memory payment repository
func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

func copyPayment(p *payment.Payment) *payment.Payment {
	cp := *p
	return &cp
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if err := s.InMemoryStore.Create(ctx, p.ID, copyPayment(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create payment").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("payment not found").
			WithHintf("Payment %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}

	cp := copyPayment(p)
	cp.UpdatedAt = time.Now().UTC()
	cp.UpdatedBy = types.GetUserID(ctx)
	if err := s.InMemoryStore.Update(ctx, p.ID, cp); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update payment").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryPaymentStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	payments, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.InvoiceID == invoiceID
		},
		func(a, b *payment.Payment) bool { return a.ID < b.ID },
	)
	if err != nil {
		return nil, err
	}

	out := make([]*payment.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, copyPayment(p))
	}
	return out, nil
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter types.QueryFilter) ([]*payment.Payment, error) {
	payments, err := s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
			return p.TenantID == types.GetTenantID(ctx)
		},
		func(a, b *payment.Payment) bool { return a.ID > b.ID },
	)
	if err != nil {
		return nil, err
	}

	limit := filter.GetLimit()
	if len(payments) > limit {
		payments = payments[:limit]
	}

	out := make([]*payment.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, copyPayment(p))
	}
	return out, nil
}
