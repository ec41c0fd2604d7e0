package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"

	"github.com/google/uuid"
)

// syncEventSink publishes operator events. A failed publish is logged and never returned.
type syncEventSink struct {
	publisher service.SyncEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (s *syncEventSink) publish(ctx context.Context, eventType string, profileID uuid.UUID, trackingUserID int64, email, reason string) {
	event := &entity.SyncEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           eventType,
		ProfileID:      profileID,
		TrackingUserID: trackingUserID,
		Email:          email,
		Reason:         reason,
		OccurredAt:     s.now().UTC(),
	}

	// The request may already be cancelled when a failure is reported.
	publishCtx, cancel := detachedTimeout(ctx)
	defer cancel()

	if err := s.publisher.PublishSyncEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("[SyncEvents] Failed to publish sync event",
			slog.String("type", eventType),
			slog.String("profile_id", profileID.String()),
			slog.String("reason", reason),
			slog.Any("error", err),
		)
	}
}
