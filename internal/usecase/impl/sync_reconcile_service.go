package impl

import (
	"context"
	"log/slog"
	"time"

	"trackio/config"
	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/constants"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/repository"
	"trackio/internal/domain/service"
	"trackio/internal/errors"
	"trackio/internal/infra/metrics"
	"trackio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Results recorded on the handled sync event counter.
const (
	reconcileResultRepaired = "repaired"
	reconcileResultSkipped  = "skipped"
	reconcileResultFailed   = "failed"
)

// syncReconcileService implements the SyncReconcileUsecase interface.
type syncReconcileService struct {
	client   service.TrackingClient
	mappings repository.IdentityMappingRepository
	cfg      *config.TraccarConfig
	logger   *slog.Logger
	now      func() time.Time
}

// SyncReconcileServiceParams holds dependencies for SyncReconcileService, injected by Fx.
type SyncReconcileServiceParams struct {
	fx.In

	Client   service.TrackingClient
	Mappings repository.IdentityMappingRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSyncReconcileService is the constructor for syncReconcileService.
func NewSyncReconcileService(params SyncReconcileServiceParams) usecase.SyncReconcileUsecase {
	return &syncReconcileService{
		client:   params.Client,
		mappings: params.Mappings,
		cfg:      params.Config.Traccar,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *syncReconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleSyncEvent dispatches on the event type. Unknown types are acknowledged and logged.
func (srv *syncReconcileService) HandleSyncEvent(ctx context.Context, event *entity.SyncEvent) error {
	var (
		result string
		err    error
	)

	switch event.Type {
	case constants.SyncEventIdentityOrphaned:
		result, err = srv.deleteOrphan(ctx, event)
	case constants.SyncEventMappingPersistFailed:
		result, err = srv.restoreMapping(ctx, event)
	case constants.SyncEventRefreshFailed:
		// Already recorded on the mapping by the refresh itself.
		result = reconcileResultSkipped
	default:
		srv.log(ctx).Warn("[SyncReconcile] Unknown sync event type", slog.String("type", event.Type))
		result = reconcileResultSkipped
	}

	if err != nil {
		result = reconcileResultFailed
	}
	metrics.SyncEventsHandled.WithLabelValues(event.Type, result).Inc()

	return err
}

// deleteOrphan removes a tracking user left behind by a failed signup.
func (srv *syncReconcileService) deleteOrphan(ctx context.Context, event *entity.SyncEvent) (string, error) {
	if event.TrackingUserID == 0 {
		srv.log(ctx).Warn("[SyncReconcile] Orphaned identity without tracking user id, manual cleanup required",
			slog.String("email", event.Email),
			slog.String("reason", event.Reason),
		)

		return reconcileResultSkipped, nil
	}

	if !srv.cfg.HasAdminCredentials() {
		return "", domainerrors.ErrTrackingConfiguration
	}

	err := srv.client.DeleteUser(ctx, event.TrackingUserID, srv.cfg.AdminEmail, srv.cfg.AdminPassword)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTrackingNotFound):
		srv.log(ctx).Info("[SyncReconcile] Orphaned tracking user already gone",
			slog.Int64("tracking_user_id", event.TrackingUserID),
		)

		return reconcileResultSkipped, nil
	default:
		return "", mapOperationError(err)
	}

	srv.log(ctx).Info("[SyncReconcile] Orphaned tracking user deleted",
		slog.Int64("tracking_user_id", event.TrackingUserID),
		slog.String("email", event.Email),
	)

	return reconcileResultRepaired, nil
}

// restoreMapping stores an unsynchronized mapping for a tracking user whose row could not be saved.
// The next session refresh fills in the credential.
func (srv *syncReconcileService) restoreMapping(ctx context.Context, event *entity.SyncEvent) (string, error) {
	if event.ProfileID == uuid.Nil {
		return reconcileResultSkipped, nil
	}

	existing, err := srv.mappings.FindByProfileID(ctx, event.ProfileID)
	switch {
	case err == nil && existing != nil:
		return reconcileResultSkipped, nil
	case err != nil && !errors.Is(err, repository.ErrIdentityMappingNotFound):
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to load identity mapping")
	}

	if event.TrackingUserID == 0 {
		return reconcileResultSkipped, nil
	}

	trackingUserID := event.TrackingUserID
	reason := event.Reason
	mapping := &entity.IdentityMapping{
		ProfileID:        event.ProfileID,
		TrackingUserID:   &trackingUserID,
		TrackingUsername: event.Email,
		IsSynced:         false,
		LastSyncAt:       srv.now(),
		SyncError:        &reason,
	}
	if _, err := srv.mappings.Upsert(ctx, mapping); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to restore identity mapping")
	}

	srv.log(ctx).Info("[SyncReconcile] Identity mapping restored",
		slog.String("profile_id", event.ProfileID.String()),
		slog.Int64("tracking_user_id", trackingUserID),
	)

	return reconcileResultRepaired, nil
}
