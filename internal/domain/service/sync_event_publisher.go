package service

import (
	"context"

	"trackio/internal/domain/entity"
)

// SyncEventPublisher reports synchronization failures to an operator-facing queue.
type SyncEventPublisher interface {
	// PublishSyncEvent publishes a single event.
	PublishSyncEvent(ctx context.Context, event *entity.SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
