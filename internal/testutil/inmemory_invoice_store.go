package testutil

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/invoice"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
}

// NewInMemoryInvoiceStore creates a new in-memory invoice repository
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	cp := *inv
	return &cp
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if err := s.InMemoryStore.Create(ctx, inv.ID, copyInvoice(inv)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || inv.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

// GetForUpdate behaves like Get; exclusion is provided by the
// serializing transaction client.
func (s *InMemoryInvoiceStore) GetForUpdate(ctx context.Context, id string) (*invoice.Invoice, error) {
	return s.Get(ctx, id)
}

func (s *InMemoryInvoiceStore) GetByToken(ctx context.Context, token string) (*invoice.Invoice, error) {
	matches, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, inv *invoice.Invoice, _ interface{}) bool {
			return inv.PortalToken == token
		}, nil)
	if err != nil || len(matches) == 0 {
		return nil, ierr.NewError("invoice not found").
			WithHint("No invoice matches the portal token").
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(matches[0]), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	existing, err := s.Get(ctx, inv.ID)
	if err != nil {
		return err
	}

	cp := copyInvoice(inv)
	// Update never touches the payment-derived fields
	cp.AmountPaid = existing.AmountPaid
	cp.AmountDue = existing.AmountDue
	cp.PaidAt = existing.PaidAt
	cp.UpdatedAt = time.Now().UTC()
	cp.UpdatedBy = types.GetUserID(ctx)
	if err := s.InMemoryStore.Update(ctx, inv.ID, cp); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryInvoiceStore) UpdateAmounts(ctx context.Context, inv *invoice.Invoice) error {
	existing, err := s.Get(ctx, inv.ID)
	if err != nil {
		return err
	}

	cp := copyInvoice(existing)
	cp.AmountPaid = inv.AmountPaid
	cp.AmountDue = inv.AmountDue
	cp.InvoiceStatus = inv.InvoiceStatus
	cp.PaidAt = inv.PaidAt
	cp.UpdatedAt = time.Now().UTC()
	cp.UpdatedBy = types.GetUserID(ctx)
	if err := s.InMemoryStore.Update(ctx, inv.ID, cp); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice amounts").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter types.DocumentFilter) ([]*invoice.Invoice, error) {
	invoices, err := s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, inv *invoice.Invoice, f interface{}) bool {
			df := f.(types.DocumentFilter)
			if inv.TenantID != types.GetTenantID(ctx) {
				return false
			}
			if df.Status != "" && string(inv.InvoiceStatus) != df.Status {
				return false
			}
			if df.CustomerID != "" && inv.CustomerID != df.CustomerID {
				return false
			}
			if df.JobID != "" && (inv.JobID == nil || *inv.JobID != df.JobID) {
				return false
			}
			return true
		},
		func(a, b *invoice.Invoice) bool { return a.ID > b.ID },
	)
	if err != nil {
		return nil, err
	}

	limit := filter.GetLimit()
	if len(invoices) > limit {
		invoices = invoices[:limit]
	}

	out := make([]*invoice.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, copyInvoice(inv))
	}
	return out, nil
}
