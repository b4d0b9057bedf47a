package testutil

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// InMemoryEstimateStore implements estimate.Repository
type InMemoryEstimateStore struct {
	*InMemoryStore[*estimate.Estimate]
	// FailNextUpdate makes the next Update fail, for testing that a
	// transaction failing partway through leaves no writes behind.
	FailNextUpdate error
}

// NewInMemoryEstimateStore creates a new in-memory estimate repository
func NewInMemoryEstimateStore() *InMemoryEstimateStore {
	return &InMemoryEstimateStore{
		InMemoryStore: NewInMemoryStore[*estimate.Estimate](),
	}
}

func copyEstimate(e *estimate.Estimate) *estimate.Estimate {
	cp := *e
	return &cp
}

func (s *InMemoryEstimateStore) Create(ctx context.Context, e *estimate.Estimate) error {
	if err := s.InMemoryStore.Create(ctx, e.ID, copyEstimate(e)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create estimate").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryEstimateStore) Get(ctx context.Context, id string) (*estimate.Estimate, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || e.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("estimate not found").
			WithHintf("Estimate %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyEstimate(e), nil
}

func (s *InMemoryEstimateStore) GetByToken(ctx context.Context, token string) (*estimate.Estimate, error) {
	matches, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, e *estimate.Estimate, _ interface{}) bool {
			return e.PortalToken == token
		}, nil)
	if err != nil || len(matches) == 0 {
		return nil, ierr.NewError("estimate not found").
			WithHint("No estimate matches the portal token").
			Mark(ierr.ErrNotFound)
	}
	return copyEstimate(matches[0]), nil
}

func (s *InMemoryEstimateStore) Update(ctx context.Context, e *estimate.Estimate) error {
	if s.FailNextUpdate != nil {
		err := s.FailNextUpdate
		s.FailNextUpdate = nil
		return err
	}

	if _, err := s.Get(ctx, e.ID); err != nil {
		return err
	}

	cp := copyEstimate(e)
	cp.UpdatedAt = time.Now().UTC()
	cp.UpdatedBy = types.GetUserID(ctx)
	if err := s.InMemoryStore.Update(ctx, e.ID, cp); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update estimate").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryEstimateStore) List(ctx context.Context, filter types.DocumentFilter) ([]*estimate.Estimate, error) {
	estimates, err := s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *estimate.Estimate, f interface{}) bool {
			df := f.(types.DocumentFilter)
			if e.TenantID != types.GetTenantID(ctx) {
				return false
			}
			if df.Status != "" && string(e.EstimateStatus) != df.Status {
				return false
			}
			if df.CustomerID != "" && e.CustomerID != df.CustomerID {
				return false
			}
			if df.JobID != "" && (e.JobID == nil || *e.JobID != df.JobID) {
				return false
			}
			return true
		},
		func(a, b *estimate.Estimate) bool { return a.ID > b.ID },
	)
	if err != nil {
		return nil, err
	}

	limit := filter.GetLimit()
	if len(estimates) > limit {
		estimates = estimates[:limit]
	}

	out := make([]*estimate.Estimate, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, copyEstimate(e))
	}
	return out, nil
}
