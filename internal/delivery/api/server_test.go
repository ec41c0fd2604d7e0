package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trackio/config"
	apimiddleware "trackio/internal/delivery/api/middleware"
	"trackio/internal/delivery/api/router"
	"trackio/internal/delivery/api/router/handler"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/errors"
	mockUsecase "trackio/internal/mocks/usecase"
	"trackio/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "access-token"

type apiMocks struct {
	accounts  *mockUsecase.MockAccountUsecase
	tracking  *mockUsecase.MockTrackingSessionUsecase
	devices   *mockUsecase.MockDeviceUsecase
	positions *mockUsecase.MockPositionUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T) (*echo.Echo, apiMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := apiMocks{
		accounts:  mockUsecase.NewMockAccountUsecase(t),
		tracking:  mockUsecase.NewMockTrackingSessionUsecase(t),
		devices:   mockUsecase.NewMockDeviceUsecase(t),
		positions: mockUsecase.NewMockPositionUsecase(t),
	}

	params := router.RouterParams{
		AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: m.accounts, Logger: logger}),
		TrackingHandler: handler.NewTrackingHandler(handler.TrackingHandlerParams{TrackingUC: m.tracking, Logger: logger}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: m.devices, Logger: logger}),
		PositionHandler: handler.NewPositionHandler(handler.PositionHandlerParams{PositionUC: m.positions, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(m.accounts),
	}

	return NewEcho(&config.Config{}, logger, params), m
}

// signedIn makes the access token resolve to a fixed account and profile.
func signedIn(m apiMocks) (*entity.Account, *entity.Profile) {
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", Name: "Ana Gomez"}
	profile := &entity.Profile{ID: uuid.New(), UserID: account.ID, FirstName: "Ana", LastName: "Gomez"}
	m.accounts.EXPECT().Authenticate(mock.Anything, testToken).Return(account, profile, nil)

	return account, profile
}

func doRequest(e *echo.Echo, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestServer_HealthCheck(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_RequestIDHeader(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(echo.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "bad id\nwith newline")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	generated := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "malformed request ids are replaced, got %q", generated)
}

func TestServer_ProtectedRouteRequiresToken(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/api/traccar/devices", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), env.Meta.RequestID)
}

func TestServer_InvalidAccessToken(t *testing.T) {
	e, m := newTestEcho(t)
	m.accounts.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, nil, domainerrors.ErrUnauthorized)

	rec := doRequest(e, http.MethodGet, "/api/traccar/devices", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Login(t *testing.T) {
	e, m := newTestEcho(t)
	profileID := uuid.New()
	expiresAt := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

	m.accounts.EXPECT().Login(mock.Anything, "ana@example.com", "secret1").Return(&usecase.LoginOutput{
		Session: &entity.AccountSession{
			AccessToken:  "at",
			RefreshToken: "rt",
			ExpiresAt:    expiresAt,
			Account:      &entity.Account{ID: uuid.New(), Email: "ana@example.com"},
		},
		Profile:            &entity.Profile{ID: profileID},
		TrackingCredential: entity.NewSessionCredential("abc123", entity.CredentialSourceCookie),
		TrackingExpiresAt:  expiresAt,
	}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secret1"}`, false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body handler.LoginResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "at", body.Session.AccessToken)
	assert.Equal(t, profileID, body.ProfileID)
	assert.Equal(t, "abc123", body.Traccar.Token)
	assert.True(t, expiresAt.Equal(body.Traccar.ExpiresAt))
}

func TestServer_LoginRolledBack(t *testing.T) {
	e, m := newTestEcho(t)
	m.accounts.EXPECT().Login(mock.Anything, "ana@example.com", "secret1").
		Return(nil, domainerrors.ErrTrackingCredentialsInvalid.WrapMessage("login rolled back"))

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TRACKING_CREDENTIALS_INVALID", env.Error.Code)
}

func TestServer_SignupValidation(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/auth/signup", `{"first_name":"Ana","password":"secret1"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email is required")
}

func TestServer_SignupMalformedBody(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/auth/signup", `{"first_name":`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "malformed request body", env.Error.Details)
}

func TestServer_Signup(t *testing.T) {
	e, m := newTestEcho(t)
	accountID := uuid.New()

	m.accounts.EXPECT().Signup(mock.Anything, usecase.SignupInput{
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana@example.com",
		Password:  "secret1",
	}).Return(&usecase.SignupOutput{
		Account:      &entity.Account{ID: accountID, Email: "ana@example.com"},
		Profile:      &entity.Profile{ID: uuid.New()},
		TrackingUser: &entity.TrackingUser{ID: 42},
	}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/signup",
		`{"first_name":"Ana","last_name":"Gomez","email":"ana@example.com","password":"secret1"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body handler.SignupResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, accountID, body.Account.ID)
	assert.Equal(t, int64(42), body.TrackingUserID)
}

func TestServer_ServerErrorsHideDetails(t *testing.T) {
	e, m := newTestEcho(t)
	m.accounts.EXPECT().ForgotPassword(mock.Anything, "ana@example.com", "").
		Return(errors.New("smtp: connection refused"))

	rec := doRequest(e, http.MethodPost, "/auth/password/forgot", `{"email":"ana@example.com"}`, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "smtp")
}

func TestServer_RefreshSession(t *testing.T) {
	e, m := newTestEcho(t)
	account, profile := signedIn(m)
	expiresAt := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

	m.tracking.EXPECT().RefreshSession(mock.Anything, account.Email, "secret1", profile.ID).
		Return(&usecase.RefreshSessionOutput{
			Credential: entity.NewSessionCredential("cookie-2", entity.CredentialSourceCookie),
			ExpiresAt:  expiresAt,
		}, nil)

	rec := doRequest(e, http.MethodPost, "/api/traccar/refresh-session", `{"password":"secret1"}`, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body handler.TrackingSessionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "cookie-2", body.Token)
}

func TestServer_RefreshSessionRequiresPassword(t *testing.T) {
	e, m := newTestEcho(t)
	signedIn(m)

	rec := doRequest(e, http.MethodPost, "/api/traccar/refresh-session", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "password is required", env.Error.Details)
}

func TestServer_ListDevicesNotSynchronized(t *testing.T) {
	e, m := newTestEcho(t)
	_, profile := signedIn(m)
	m.devices.EXPECT().ListDevices(mock.Anything, profile.ID).Return(nil, domainerrors.ErrTrackingNotSynchronized)

	rec := doRequest(e, http.MethodGet, "/api/traccar/devices", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TRACKING_NOT_SYNCHRONIZED", env.Error.Code)
}

func TestServer_ListDevicesEmpty(t *testing.T) {
	e, m := newTestEcho(t)
	_, profile := signedIn(m)
	m.devices.EXPECT().ListDevices(mock.Anything, profile.ID).Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/api/traccar/devices", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestServer_GetDevice(t *testing.T) {
	t.Run("missing device", func(t *testing.T) {
		e, m := newTestEcho(t)
		_, profile := signedIn(m)
		m.devices.EXPECT().GetDevice(mock.Anything, profile.ID, int64(7)).Return(nil, nil)

		rec := doRequest(e, http.MethodGet, "/api/traccar/devices/7", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "TRACKING_RESOURCE_NOT_FOUND", env.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		e, m := newTestEcho(t)
		signedIn(m)

		rec := doRequest(e, http.MethodGet, "/api/traccar/devices/abc", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CreateDevice(t *testing.T) {
	e, m := newTestEcho(t)
	_, profile := signedIn(m)

	m.devices.EXPECT().CreateDevice(mock.Anything, profile.ID, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, device *entity.Device) (*entity.Device, error) {
			assert.Equal(t, "Van 1", device.Name)
			assert.Equal(t, "123456", device.UniqueID)
			created := *device
			created.ID = 9

			return &created, nil
		})

	rec := doRequest(e, http.MethodPost, "/api/traccar/devices", `{"name":"Van 1","uniqueId":"123456"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var device entity.Device
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &device))
	assert.Equal(t, int64(9), device.ID)
}

func TestServer_CreateDeviceValidation(t *testing.T) {
	e, m := newTestEcho(t)
	signedIn(m)

	rec := doRequest(e, http.MethodPost, "/api/traccar/devices", `{"name":"Van 1"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "uniqueId is required", env.Error.Details)
}

func TestServer_DeleteDevice(t *testing.T) {
	e, m := newTestEcho(t)
	_, profile := signedIn(m)
	m.devices.EXPECT().DeleteDevice(mock.Anything, profile.ID, int64(7)).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/api/traccar/devices/7", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServer_PositionsGeoJSON(t *testing.T) {
	e, m := newTestEcho(t)
	_, profile := signedIn(m)

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{-58.38, -34.60}))
	deviceID := int64(7)
	m.positions.EXPECT().GetPositionsGeoJSON(mock.Anything, profile.ID, mock.AnythingOfType("entity.PositionQuery")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, query entity.PositionQuery) (*geojson.FeatureCollection, error) {
			require.NotNil(t, query.DeviceID)
			assert.Equal(t, deviceID, *query.DeviceID)
			require.NotNil(t, query.From)
			require.NotNil(t, query.To)

			return fc, nil
		})

	rec := doRequest(e, http.MethodGet,
		"/api/traccar/positions?format=geojson&deviceId=7&from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, orb.Point{-58.38, -34.60}, decoded.Features[0].Geometry)
}

func TestServer_PositionsQueryValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "bad device id", query: "deviceId=-1"},
		{name: "bad timestamp", query: "from=yesterday"},
		{name: "inverted range", query: "from=2026-03-02T00:00:00Z&to=2026-03-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEcho(t)
			signedIn(m)

			rec := doRequest(e, http.MethodGet, "/api/traccar/positions?"+tt.query, "", true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/nope", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
