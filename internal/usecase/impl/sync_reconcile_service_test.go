package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"trackio/internal/domain/constants"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/repository"
	"trackio/internal/errors"
	mockRepo "trackio/internal/mocks/repository"
	mockSvc "trackio/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSyncReconcileServiceForTest(t *testing.T) (*syncReconcileService, *mockSvc.MockTrackingClient, *mockRepo.MockIdentityMappingRepository) {
	t.Helper()

	client := mockSvc.NewMockTrackingClient(t)
	mappings := mockRepo.NewMockIdentityMappingRepository(t)

	srv := NewSyncReconcileService(SyncReconcileServiceParams{
		Client:   client,
		Mappings: mappings,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	}).(*syncReconcileService)
	srv.now = func() time.Time { return fixedNow }

	return srv, client, mappings
}

func TestSyncReconcileService_DeletesOrphan(t *testing.T) {
	srv, client, _ := newSyncReconcileServiceForTest(t)
	ctx := context.Background()

	client.EXPECT().DeleteUser(ctx, int64(42), "admin@example.com", "admin-secret").Return(nil)

	err := srv.HandleSyncEvent(ctx, &entity.SyncEvent{
		Type:           constants.SyncEventIdentityOrphaned,
		TrackingUserID: 42,
		Email:          "ana@example.com",
	})
	require.NoError(t, err)
}

func TestSyncReconcileService_OrphanOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantErr   error
	}{
		{name: "already deleted", deleteErr: trackingErr(http.StatusNotFound, "not found"), wantErr: nil},
		{name: "tracking unavailable", deleteErr: trackingErr(http.StatusBadGateway, "bad gateway"), wantErr: domainerrors.ErrTrackingUnavailable},
		{name: "admin rejected", deleteErr: trackingErr(http.StatusUnauthorized, ""), wantErr: domainerrors.ErrTrackingSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, client, _ := newSyncReconcileServiceForTest(t)
			ctx := context.Background()

			client.EXPECT().DeleteUser(ctx, int64(7), "admin@example.com", "admin-secret").Return(tt.deleteErr)

			err := srv.HandleSyncEvent(ctx, &entity.SyncEvent{Type: constants.SyncEventIdentityOrphaned, TrackingUserID: 7})
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSyncReconcileService_OrphanWithoutIDIsSkipped(t *testing.T) {
	srv, _, _ := newSyncReconcileServiceForTest(t)

	err := srv.HandleSyncEvent(context.Background(), &entity.SyncEvent{
		Type:  constants.SyncEventIdentityOrphaned,
		Email: "ana@example.com",
	})
	assert.NoError(t, err)
}

func TestSyncReconcileService_OrphanWithoutAdmin(t *testing.T) {
	srv, _, _ := newSyncReconcileServiceForTest(t)
	srv.cfg.AdminPassword = ""

	err := srv.HandleSyncEvent(context.Background(), &entity.SyncEvent{Type: constants.SyncEventIdentityOrphaned, TrackingUserID: 7})
	assert.True(t, errors.Is(err, domainerrors.ErrTrackingConfiguration))
}

func TestSyncReconcileService_RestoresMissingMapping(t *testing.T) {
	srv, _, mappings := newSyncReconcileServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()

	mappings.EXPECT().FindByProfileID(ctx, profileID).Return(nil, repository.ErrIdentityMappingNotFound)
	mappings.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.IdentityMapping")).
		RunAndReturn(func(_ context.Context, mapping *entity.IdentityMapping) (*entity.IdentityMapping, error) {
			assert.Equal(t, profileID, mapping.ProfileID)
			require.NotNil(t, mapping.TrackingUserID)
			assert.Equal(t, int64(42), *mapping.TrackingUserID)
			assert.Equal(t, "ana@example.com", mapping.TrackingUsername)
			assert.False(t, mapping.IsSynced)
			assert.Nil(t, mapping.SessionToken)
			require.NotNil(t, mapping.SyncError)
			assert.Equal(t, "connection reset", *mapping.SyncError)
			assert.Equal(t, fixedNow, mapping.LastSyncAt)

			return mapping, nil
		})

	err := srv.HandleSyncEvent(ctx, &entity.SyncEvent{
		Type:           constants.SyncEventMappingPersistFailed,
		ProfileID:      profileID,
		TrackingUserID: 42,
		Email:          "ana@example.com",
		Reason:         "connection reset",
	})
	require.NoError(t, err)
}

func TestSyncReconcileService_ExistingMappingIsKept(t *testing.T) {
	srv, _, mappings := newSyncReconcileServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()

	mappings.EXPECT().FindByProfileID(ctx, profileID).Return(&entity.IdentityMapping{ProfileID: profileID, IsSynced: true}, nil)

	err := srv.HandleSyncEvent(ctx, &entity.SyncEvent{
		Type:           constants.SyncEventMappingPersistFailed,
		ProfileID:      profileID,
		TrackingUserID: 42,
	})
	require.NoError(t, err)
}

func TestSyncReconcileService_RestoreDatabaseFailure(t *testing.T) {
	srv, _, mappings := newSyncReconcileServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()

	mappings.EXPECT().FindByProfileID(ctx, profileID).Return(nil, errors.New("connection refused"))

	err := srv.HandleSyncEvent(ctx, &entity.SyncEvent{
		Type:           constants.SyncEventMappingPersistFailed,
		ProfileID:      profileID,
		TrackingUserID: 42,
	})
	require.Error(t, err)
	_, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err)
	assert.True(t, ok)
}

func TestSyncReconcileService_RefreshFailureIsAcknowledged(t *testing.T) {
	srv, _, _ := newSyncReconcileServiceForTest(t)

	err := srv.HandleSyncEvent(context.Background(), &entity.SyncEvent{
		Type:      constants.SyncEventRefreshFailed,
		ProfileID: uuid.New(),
	})
	assert.NoError(t, err)
}
