package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/tenant"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// InMemoryTenantStore implements tenant.Repository. Counter increments
// happen under the store mutex, mirroring the atomic increment-and-read
// the SQL implementation does in one round trip.
type InMemoryTenantStore struct {
	mu      sync.Mutex
	tenants map[string]*tenant.Tenant
}

// NewInMemoryTenantStore creates a new in-memory tenant repository
func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		tenants: make(map[string]*tenant.Tenant),
	}
}

// snapshot deep-copies each tenant because NextDocumentNumber mutates
// the stored counters in place.
func (s *InMemoryTenantStore) snapshot() func() {
	s.mu.Lock()
	saved := make(map[string]*tenant.Tenant, len(s.tenants))
	for id, t := range s.tenants {
		cp := *t
		saved[id] = &cp
	}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.tenants = saved
		s.mu.Unlock()
	}
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tenants[t.ID]; exists {
		return ierr.NewError("tenant already exists").
			WithHintf("Tenant %s already exists", t.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	cp := *t
	s.tenants[t.ID] = &cp
	return nil
}

func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.tenants[id]
	if !exists {
		return nil, ierr.NewError("tenant not found").
			WithHintf("Tenant %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	cp := *t
	return &cp, nil
}

func (s *InMemoryTenantStore) NextDocumentNumber(ctx context.Context, kind types.DocumentKind) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.tenants[types.GetTenantID(ctx)]
	if !exists {
		return "", ierr.NewError("tenant not found").
			WithHint("Tenant for document numbering was not found").
			Mark(ierr.ErrNotFound)
	}

	switch kind {
	case types.DocumentKindEstimate:
		number := fmt.Sprintf("%s-%04d", t.EstimatePrefix, t.EstimateNextNumber)
		t.EstimateNextNumber++
		return number, nil
	default:
		number := fmt.Sprintf("%s-%04d", t.InvoicePrefix, t.InvoiceNextNumber)
		t.InvoiceNextNumber++
		return number, nil
	}
}
