package consumer

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/billyribeiro-ux/fieldforge/internal/config"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/publisher"
	"github.com/billyribeiro-ux/fieldforge/internal/pubsub"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// EffectHandler executes one effect tag for a transition event.
// Implementations talk to the notification, calendar, tracking and
// billing integrations; the default handler only records the work.
type EffectHandler func(ctx context.Context, event *publisher.EffectEvent, tag types.EffectTag) error

// EffectConsumer drains the effects topic and runs a handler per tag.
// Delivery is at-least-once, so handlers must tolerate replays.
type EffectConsumer struct {
	subscriber pubsub.Subscriber
	topic      string
	handler    EffectHandler
	logger     *logger.Logger
}

// NewEffectConsumer creates a consumer bound to the configured topic
func NewEffectConsumer(cfg *config.Configuration, sub pubsub.Subscriber, logger *logger.Logger) *EffectConsumer {
	c := &EffectConsumer{
		subscriber: sub,
		topic:      cfg.Effects.Topic,
		logger:     logger,
	}
	c.handler = c.logEffect
	return c
}

// WithHandler overrides the per-tag handler
func (c *EffectConsumer) WithHandler(handler EffectHandler) *EffectConsumer {
	c.handler = handler
	return c
}

// Run consumes until the context is cancelled or the channel closes
func (c *EffectConsumer) Run(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return err
	}

	c.logger.Infow("effect consumer started", "topic", c.topic)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			c.process(ctx, msg)
		}
	}
}

func (c *EffectConsumer) process(ctx context.Context, msg *message.Message) {
	var event publisher.EffectEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		c.logger.Errorw("failed to unmarshal effect event",
			"message_id", msg.UUID,
			"error", err,
		)
		// malformed payloads will never parse, drop them
		msg.Ack()
		return
	}

	ctx = types.SetTenantID(ctx, event.TenantID)
	for _, tag := range event.Effects {
		if err := c.handler(ctx, &event, tag); err != nil {
			c.logger.Errorw("effect handler failed",
				"event_id", event.ID,
				"job_id", event.JobID,
				"effect", tag,
				"error", err,
			)
			msg.Nack()
			return
		}
	}
	msg.Ack()
}

func (c *EffectConsumer) logEffect(ctx context.Context, event *publisher.EffectEvent, tag types.EffectTag) error {
	c.logger.Infow("executing effect",
		"event_id", event.ID,
		"job_id", event.JobID,
		"from_status", event.FromStatus,
		"to_status", event.ToStatus,
		"effect", tag,
	)
	return nil
}
