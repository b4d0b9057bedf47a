package testutil

import (
	"context"
	"sync"

	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
)

var _ postgres.IClient = (*InMemoryClient)(nil)

type txMarker struct{}

// TxStore is a store whose state the transaction client can capture
// before a transaction and restore when it fails.
type TxStore interface {
	snapshot() func()
}

// InMemoryClient models the database client for service tests. WithTx
// serializes all transactions behind one mutex, which is how the row
// lock on the payment path behaves: two concurrent transactions against
// the same invoice never interleave, the second always observes the
// committed balance of the first. Registered stores are snapshotted at
// transaction start and restored when the transaction returns an
// error, so a failed transaction leaves no partial writes behind.
type InMemoryClient struct {
	mu     sync.Mutex
	stores []TxStore
	logger *logger.Logger
}

// NewInMemoryClient creates a new in-memory database client. Stores
// passed in participate in rollback.
func NewInMemoryClient(logger *logger.Logger, stores ...TxStore) *InMemoryClient {
	return &InMemoryClient{logger: logger, stores: stores}
}

// WithTx runs fn while holding the transaction lock. Nested calls reuse
// the transaction already on the context. On error every registered
// store is restored to its pre-transaction state.
func (c *InMemoryClient) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	restores := make([]func(), 0, len(c.stores))
	for _, store := range c.stores {
		restores = append(restores, store.snapshot())
	}

	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
		return err
	}
	return nil
}

// Querier is unused by the in-memory repositories
func (c *InMemoryClient) Querier(ctx context.Context) postgres.Querier {
	return nil
}
