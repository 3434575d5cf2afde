package app

import (
	"context"
	"log"
	"time"

	"boardhub/internal/model"
)

// ActivityPublisher is satisfied by the rabbitmq publisher. A nil publisher
// disables the pipeline, which is how tests run without a broker.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityLog) error
}

// publishActivity is best-effort: a broker failure is logged and never
// fails the mutation that triggered it.
func publishActivity(ctx context.Context, publisher ActivityPublisher, actorID uint, action, entity string, entityID uint) {
	if publisher == nil {
		return
	}
	event := model.ActivityLog{
		ActorID:    actorID,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: time.Now(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Printf("publish %s %s activity failed: %v", entity, action, err)
	}
}
