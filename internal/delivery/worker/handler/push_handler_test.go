package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackio/config"
	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/constants"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/errors"
	mockUsecase "trackio/internal/mocks/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(t *testing.T) (*PushHandler, *mockUsecase.MockSyncReconcileUsecase) {
	t.Helper()

	reconciler := mockUsecase.NewMockSyncReconcileUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reconciler: reconciler,
	})

	return h, reconciler
}

func pushBody(t *testing.T, event *entity.SyncEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/sync-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_Acknowledges(t *testing.T) {
	h, reconciler := newPushHandlerForTest(t)
	profileID := uuid.New()

	reconciler.EXPECT().HandleSyncEvent(mock.Anything, mock.AnythingOfType("*entity.SyncEvent")).
		Run(func(ctx context.Context, event *entity.SyncEvent) {
			assert.Equal(t, constants.SyncEventIdentityOrphaned, event.Type)
			assert.Equal(t, profileID, event.ProfileID)
			assert.Equal(t, int64(42), event.TrackingUserID)
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	body := pushBody(t, &entity.SyncEvent{
		RequestID:      "req-event",
		Type:           constants.SyncEventIdentityOrphaned,
		ProfileID:      profileID,
		TrackingUserID: 42,
	}, map[string]string{"request_id": "req-attr"})

	rec := servePush(h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryDecision(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "tracking unavailable", err: domainerrors.ErrTrackingUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "database failure", err: domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "load"), wantCode: http.StatusServiceUnavailable},
		{name: "permanent failure", err: domainerrors.ErrTrackingConfiguration, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reconciler := newPushHandlerForTest(t)
			reconciler.EXPECT().HandleSyncEvent(mock.Anything, mock.Anything).Return(tt.err)

			body := pushBody(t, &entity.SyncEvent{Type: constants.SyncEventMappingPersistFailed, ProfileID: uuid.New()}, nil)
			rec := servePush(h, body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "bad event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushHandlerForTest(t)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_GooglePushRequiresToken(t *testing.T) {
	reconciler := mockUsecase.NewMockSyncReconcileUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reconciler: reconciler,
	})

	rec := servePush(h, pushBody(t, &entity.SyncEvent{Type: constants.SyncEventRefreshFailed}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
