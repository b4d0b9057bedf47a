package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/billyribeiro-ux/fieldforge/internal/config"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/pubsub"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// EffectEvent is the message handed to external effect workers after a
// job transition commits. Delivery is at-least-once and best-effort;
// a failed publish never rolls back the transition.
type EffectEvent struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id"`
	JobID      string            `json:"job_id"`
	FromStatus types.JobStatus   `json:"from_status"`
	ToStatus   types.JobStatus   `json:"to_status"`
	Effects    []types.EffectTag `json:"effects"`
	Timestamp  time.Time         `json:"timestamp"`
}

// EffectPublisher hands transition side effects to the task queue
type EffectPublisher interface {
	PublishEffects(ctx context.Context, event *EffectEvent) error
}

type effectPublisher struct {
	pubsub     pubsub.Publisher
	topic      string
	maxRetries uint64
	logger     *logger.Logger
}

// NewEffectPublisher creates a publisher bound to the configured topic
func NewEffectPublisher(cfg *config.Configuration, pb pubsub.Publisher, logger *logger.Logger) EffectPublisher {
	return &effectPublisher{
		pubsub:     pb,
		topic:      cfg.Effects.Topic,
		maxRetries: uint64(cfg.Effects.MaxRetries),
		logger:     logger,
	}
}

// NewEffectEvent builds an event for the given transition
func NewEffectEvent(ctx context.Context, jobID string, from, to types.JobStatus, effects []types.EffectTag) *EffectEvent {
	return &EffectEvent{
		ID:         uuid.NewString(),
		TenantID:   types.GetTenantID(ctx),
		JobID:      jobID,
		FromStatus: from,
		ToStatus:   to,
		Effects:    effects,
		Timestamp:  time.Now().UTC(),
	}
}

func (p *effectPublisher) PublishEffects(ctx context.Context, event *EffectEvent) error {
	if len(event.Effects) == 0 {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to marshal effect event").
			Mark(ierr.ErrSystem)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("tenant_id", event.TenantID)
	msg.Metadata.Set("job_id", event.JobID)

	operation := func() error {
		return p.pubsub.Publish(ctx, p.topic, msg)
	}

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.maxRetries)
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to publish effect event").
			Mark(ierr.ErrSystem)
	}

	p.logger.Debugw("published effect event",
		"event_id", event.ID,
		"job_id", event.JobID,
		"from_status", event.FromStatus,
		"to_status", event.ToStatus,
		"effects", event.Effects,
	)
	return nil
}
