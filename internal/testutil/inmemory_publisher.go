package testutil

import (
	"context"
	"sync"

	"github.com/billyribeiro-ux/fieldforge/internal/publisher"
)

var _ publisher.EffectPublisher = (*InMemoryEffectPublisher)(nil)

// InMemoryEffectPublisher captures published effect events for assertions
type InMemoryEffectPublisher struct {
	mu     sync.Mutex
	events []*publisher.EffectEvent
	// FailNext makes the next publish fail, for testing best-effort
	// dispatch semantics.
	FailNext error
}

// NewInMemoryEffectPublisher creates a capturing effect publisher
func NewInMemoryEffectPublisher() *InMemoryEffectPublisher {
	return &InMemoryEffectPublisher{}
}

func (p *InMemoryEffectPublisher) PublishEffects(ctx context.Context, event *publisher.EffectEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.FailNext != nil {
		err := p.FailNext
		p.FailNext = nil
		return err
	}

	p.events = append(p.events, event)
	return nil
}

// Events returns a snapshot of everything published so far
func (p *InMemoryEffectPublisher) Events() []*publisher.EffectEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*publisher.EffectEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Reset clears captured events
func (p *InMemoryEffectPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
