package usecase

import (
	"context"

	"trackio/internal/domain/entity"
)

// SyncReconcileUsecase repairs the state described by a published sync event.
type SyncReconcileUsecase interface {
	// HandleSyncEvent applies the repair for one event. Errors matching
	// domain ErrTrackingUnavailable or a database failure are worth redelivering.
	HandleSyncEvent(ctx context.Context, event *entity.SyncEvent) error
}
