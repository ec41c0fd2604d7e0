// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Refresh outcomes recorded on the session refresh counter.
const (
	refreshResultSuccess            = "success"
	refreshResultCredentialsInvalid = "credentials_invalid"
	refreshResultUnavailable        = "unavailable"
	refreshResultNoToken            = "no_token"
	refreshResultPersistFailed      = "persist_failed"
	refreshResultUnknown            = "unknown"
)

// trackingSessionService implements the TrackingSessionUsecase interface.
type trackingSessionService struct {
	client   service.TrackingClient
	mappings repository.IdentityMappingRepository
	events   *syncEventSink
	cfg      *config.TraccarConfig
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// TrackingSessionServiceParams holds dependencies for TrackingSessionService, injected by Fx.
type TrackingSessionServiceParams struct {
	fx.In

	Client    service.TrackingClient
	Mappings  repository.IdentityMappingRepository
	Publisher service.SyncEventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTrackingSessionService is the constructor for trackingSessionService.
func NewTrackingSessionService(params TrackingSessionServiceParams) usecase.TrackingSessionUsecase {
	return &trackingSessionService{
		client:   params.Client,
		mappings: params.Mappings,
		events:   &syncEventSink{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		cfg:      params.Config.Traccar,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trackingSessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterTrackingIdentity creates the tracking user with admin credentials, then tries to open a session.
// A missing session is not an error; the user can refresh it on the next login.
func (srv *trackingSessionService) RegisterTrackingIdentity(ctx context.Context, input usecase.RegisterTrackingInput) (*usecase.RegisterTrackingOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	}

	if !srv.cfg.HasAdminCredentials() {
		srv.log(ctx).Error("[TrackingSession] Admin credentials not configured")
		metrics.Registrations.WithLabelValues("configuration_error").Inc()

		return nil, domainerrors.ErrTrackingConfiguration
	}

	payload := &entity.TrackingUser{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}
	if input.FirstName != "" || input.LastName != "" {
		payload.Attributes = map[string]any{}
		if input.FirstName != "" {
			payload.Attributes[entity.TrackingAttrFirstName] = input.FirstName
		}
		if input.LastName != "" {
			payload.Attributes[entity.TrackingAttrLastName] = input.LastName
		}
	}

	srv.log(ctx).Info("[TrackingSession] Creating tracking user", slog.String("email", input.Email))

	user, err := srv.client.CreateUser(ctx, payload, srv.cfg.AdminEmail, srv.cfg.AdminPassword)
	if err != nil {
		srv.log(ctx).Error("[TrackingSession] Failed to create tracking user",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)
		metrics.Registrations.WithLabelValues("rejected").Inc()

		return nil, mapRegistrationError(err)
	}

	output := &usecase.RegisterTrackingOutput{TrackingUser: user}

	expiresAt := srv.now().Add(srv.cfg.SessionTTL)
	credential, err := srv.openSession(ctx, input.Email, input.Password, expiresAt)
	if err != nil {
		srv.log(ctx).Warn("[TrackingSession] Tracking user created without a session",
			slog.Int64("tracking_user_id", user.ID),
			slog.Any("error", err),
		)
	}
	if credential != nil {
		output.Credential = credential
		output.ExpiresAt = &expiresAt
	}

	if input.ProfileID != uuid.Nil {
		mapping := newIdentityMapping(input.ProfileID, user, input.Email, credential, output.ExpiresAt, srv.now())
		if _, err := srv.mappings.Upsert(ctx, mapping); err != nil {
			srv.log(ctx).Error("[TrackingSession] Tracking user created but mapping could not be saved",
				slog.String("profile_id", input.ProfileID.String()),
				slog.Int64("tracking_user_id", user.ID),
				slog.Any("error", err),
			)
			srv.events.publish(ctx, constants.SyncEventMappingPersistFailed, input.ProfileID, user.ID, input.Email, err.Error())
			metrics.Registrations.WithLabelValues("persist_failed").Inc()

			return nil, domainerrors.ErrTrackingMappingPersistFailed.WrapMessage("failed to persist identity mapping")
		}
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	srv.log(ctx).Info("[TrackingSession] Tracking user registered",
		slog.Int64("tracking_user_id", user.ID),
		slog.Bool("has_session", credential != nil),
	)

	return output, nil
}

// RefreshSession logs in to the tracking service and upserts the mapping of profileID.
func (srv *trackingSessionService) RefreshSession(ctx context.Context, email, password string, profileID uuid.UUID) (*usecase.RefreshSessionOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || profileID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email, password and profile are required")
	}

	now := srv.now()
	expiresAt := now.Add(srv.cfg.SessionTTL)

	session, err := srv.client.CreateSession(ctx, email, password)
	if err != nil {
		return nil, srv.failRefresh(ctx, profileID, email, err, mapSessionError(err))
	}

	credential := session.Credential
	if credential.IsBlank() {
		srv.log(ctx).Warn("[TrackingSession] Session created without cookie, requesting explicit token",
			slog.String("profile_id", profileID.String()),
		)

		credential, err = srv.client.GenerateToken(ctx, email, password, &expiresAt)
		if err != nil {
			mapped := error(domainerrors.ErrTrackingSessionUnavailable)
			if errors.Is(err, service.ErrTrackingTransient) {
				mapped = domainerrors.ErrTrackingUnavailable
			}

			return nil, srv.failRefresh(ctx, profileID, email, err, mapped)
		}
		if credential.IsBlank() {
			return nil, srv.failRefresh(ctx, profileID, email,
				errors.New("tracking service returned an empty session token"),
				domainerrors.ErrTrackingSessionUnavailable)
		}
	}

	mapping := newIdentityMapping(profileID, session.User, email, credential, &expiresAt, now)
	stored, err := srv.mappings.Upsert(ctx, mapping)
	if err != nil {
		srv.log(ctx).Error("[TrackingSession] Failed to persist refreshed session",
			slog.String("profile_id", profileID.String()),
			slog.Any("error", err),
		)
		srv.events.publish(ctx, constants.SyncEventMappingPersistFailed, profileID, 0, email, err.Error())
		metrics.SessionRefreshes.WithLabelValues(refreshResultPersistFailed).Inc()

		return nil, domainerrors.ErrTrackingMappingPersistFailed.WrapMessage("failed to persist refreshed session")
	}

	metrics.SessionRefreshes.WithLabelValues(refreshResultSuccess).Inc()
	srv.log(ctx).Debug("[TrackingSession] Session refreshed",
		slog.String("profile_id", profileID.String()),
		slog.Int("token_length", len(credential.Value)),
	)

	if stored.TokenExpiresAt != nil {
		expiresAt = *stored.TokenExpiresAt
	}

	return &usecase.RefreshSessionOutput{Credential: credential, ExpiresAt: expiresAt}, nil
}

// ResolveCredential returns the stored credential of profileID when it is present and unexpired.
func (srv *trackingSessionService) ResolveCredential(ctx context.Context, profileID uuid.UUID) (*entity.SessionCredential, error) {
	mapping, err := srv.mappings.FindByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityMappingNotFound) {
			return nil, domainerrors.ErrTrackingNotSynchronized
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load identity mapping")
	}

	if !mapping.HasToken() {
		return nil, domainerrors.ErrTrackingTokenUnavailable
	}
	if mapping.IsExpired(srv.now()) {
		return nil, domainerrors.ErrTrackingTokenExpired
	}

	return mapping.Credential(), nil
}

// openSession logs in and falls back to the explicit token endpoint when no cookie was set.
func (srv *trackingSessionService) openSession(ctx context.Context, email, password string, expiresAt time.Time) (*entity.SessionCredential, error) {
	session, err := srv.client.CreateSession(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !session.Credential.IsBlank() {
		return session.Credential, nil
	}

	credential, err := srv.client.GenerateToken(ctx, email, password, &expiresAt)
	if err != nil {
		return nil, err
	}
	if credential.IsBlank() {
		return nil, errors.New("tracking service returned an empty session token")
	}

	return credential, nil
}

// failRefresh records a failed refresh on an existing mapping and returns mapped.
func (srv *trackingSessionService) failRefresh(ctx context.Context, profileID uuid.UUID, email string, cause, mapped error) error {
	result := refreshResult(mapped)
	metrics.SessionRefreshes.WithLabelValues(result).Inc()

	srv.log(ctx).Warn("[TrackingSession] Session refresh failed",
		slog.String("profile_id", profileID.String()),
		slog.String("result", result),
		slog.Any("error", cause),
	)

	if err := srv.mappings.RecordSyncError(ctx, profileID, cause.Error()); err != nil &&
		!errors.Is(err, repository.ErrIdentityMappingNotFound) {
		srv.log(ctx).Error("[TrackingSession] Failed to record sync error",
			slog.String("profile_id", profileID.String()),
			slog.Any("error", err),
		)
	}

	// Wrong passwords are user errors, not operator events.
	if result != refreshResultCredentialsInvalid {
		srv.events.publish(ctx, constants.SyncEventRefreshFailed, profileID, 0, email, cause.Error())
	}

	return mapped
}

func refreshResult(mapped error) string {
	switch {
	case errors.Is(mapped, domainerrors.ErrTrackingCredentialsInvalid):
		return refreshResultCredentialsInvalid
	case errors.Is(mapped, domainerrors.ErrTrackingUnavailable):
		return refreshResultUnavailable
	case errors.Is(mapped, domainerrors.ErrTrackingSessionUnavailable):
		return refreshResultNoToken
	default:
		return refreshResultUnknown
	}
}
