package events

import (
	"context"
	"fmt"

	"github.com/philly/posts-api/internal/platform/eventbus"
	"github.com/philly/posts-api/internal/platform/logger"
)

// SubscribePostsAudit registers handlers that write one audit log line per
// post lifecycle event.
func SubscribePostsAudit(bus *eventbus.Bus, log logger.Logger) {
	bus.Subscribe(PostCreatedTopic, func(ctx context.Context, event eventbus.Event) error {
		e, ok := event.Payload.(PostCreatedEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		log.Info(ctx, "audit: post created",
			"event_id", e.EventID,
			"post_id", e.PostID,
			"title", e.Title,
			"occurred_at", e.OccurredAt,
		)
		return nil
	})

	bus.Subscribe(PostUpdatedTopic, func(ctx context.Context, event eventbus.Event) error {
		e, ok := event.Payload.(PostUpdatedEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		log.Info(ctx, "audit: post updated",
			"event_id", e.EventID,
			"post_id", e.PostID,
			"changed_fields", e.ChangedFields,
			"occurred_at", e.OccurredAt,
		)
		return nil
	})

	bus.Subscribe(PostDeletedTopic, func(ctx context.Context, event eventbus.Event) error {
		e, ok := event.Payload.(PostDeletedEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		log.Info(ctx, "audit: post deleted",
			"event_id", e.EventID,
			"post_id", e.PostID,
			"occurred_at", e.OccurredAt,
		)
		return nil
	})
}

func unexpectedPayload(event eventbus.Event) error {
	return fmt.Errorf("unexpected payload %T on topic %s", event.Payload, event.Topic)
}
