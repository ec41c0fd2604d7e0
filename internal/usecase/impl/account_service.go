package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"trackio/config"
	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/constants"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/lifecycle"
	"trackio/internal/domain/repository"
	"trackio/internal/domain/service"
	"trackio/internal/errors"
	"trackio/internal/infra/metrics"
	"trackio/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const resetPasswordPath = "/auth/reset-password"

// accountService implements the AccountUsecase interface.
type accountService struct {
	provider  service.AccountProvider
	tracking  usecase.TrackingSessionUsecase
	client    service.TrackingClient
	txManager repository.TransactionManager
	profiles  repository.ProfileRepository
	mappings  repository.IdentityMappingRepository
	mailer    service.Mailer
	events    *syncEventSink
	traccar   *config.TraccarConfig
	minLength int
	siteURL   string
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Provider  service.AccountProvider
	Tracking  usecase.TrackingSessionUsecase
	Client    service.TrackingClient
	TxManager repository.TransactionManager
	Profiles  repository.ProfileRepository
	Mappings  repository.IdentityMappingRepository
	Mailer    service.Mailer
	Publisher service.SyncEventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minLength := 0
	if params.Config.Auth != nil {
		minLength = params.Config.Auth.PasswordMinLength
	}

	return &accountService{
		provider:  params.Provider,
		tracking:  params.Tracking,
		client:    params.Client,
		txManager: params.TxManager,
		profiles:  params.Profiles,
		mappings:  params.Mappings,
		mailer:    params.Mailer,
		events:    &syncEventSink{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		traccar:   params.Config.Traccar,
		minLength: minLength,
		siteURL:   strings.TrimRight(params.Config.Site.BaseURL, "/"),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the tracking identity first, then the primary account, then the profile and
// mapping in one transaction. Any failure after the tracking user exists removes it again.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if len(input.Password) < srv.minLength {
		return nil, domainerrors.ErrPasswordTooShort.WithDetails(fmt.Sprintf("password must be at least %d characters", srv.minLength))
	}

	name := entity.JoinName(input.FirstName, input.LastName)
	srv.log(ctx).Info("[Signup] Starting signup", slog.String("email", input.Email))

	registered, err := srv.tracking.RegisterTrackingIdentity(ctx, usecase.RegisterTrackingInput{
		Name:      name,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		srv.log(ctx).Warn("[Signup] Tracking registration failed, no account created",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	account, err := srv.provider.SignUp(ctx, input.Email, input.Password, name)
	if err != nil {
		srv.log(ctx).Error("[Signup] Failed to create primary account", slog.String("email", input.Email), slog.Any("error", err))
		srv.compensateSignup(ctx, registered.TrackingUser, input.Email, err)

		return nil, mapProviderError(err)
	}

	profile := &entity.Profile{UserID: account.ID, FirstName: input.FirstName, LastName: input.LastName}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().CreateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		mapping := newIdentityMapping(profile.ID, registered.TrackingUser, input.Email, registered.Credential, registered.ExpiresAt, srv.now())
		if _, err := repoFactory.IdentityMappingRepo().Upsert(ctx, mapping); err != nil {
			return errors.Wrap(err, "failed to create identity mapping")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("[Signup] Failed to create profile", slog.String("account_id", account.ID.String()), slog.Any("error", err))

		cctx, cancel := detachedTimeout(ctx)
		delErr := srv.provider.DeleteUser(cctx, account.ID)
		cancel()
		if delErr != nil {
			srv.log(ctx).Error("[Signup] Failed to remove primary account after signup failure",
				slog.String("account_id", account.ID.String()),
				slog.Any("error", delErr),
			)
		}
		srv.compensateSignup(ctx, registered.TrackingUser, input.Email, err)

		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	baseURL := strings.TrimSpace(input.BaseURL)
	if baseURL == "" {
		baseURL = srv.siteURL
	}
	if err := srv.mailer.SendWelcomeEmail(ctx, input.Email, name, input.Password, baseURL); err != nil {
		srv.log(ctx).Warn("[Signup] Failed to send welcome email", slog.String("email", input.Email), slog.Any("error", err))
	}

	srv.log(ctx).Info("[Signup] Signup completed",
		slog.String("account_id", account.ID.String()),
		slog.String("profile_id", profile.ID.String()),
	)

	return &usecase.SignupOutput{Account: account, Profile: profile, TrackingUser: registered.TrackingUser}, nil
}

// compensateSignup deletes a tracking user whose signup could not be completed.
func (srv *accountService) compensateSignup(ctx context.Context, user *entity.TrackingUser, email string, cause error) {
	if user == nil || user.ID == 0 {
		srv.log(ctx).Error("[Signup] Tracking user id unknown, cannot compensate", slog.String("email", email))
		srv.events.publish(ctx, constants.SyncEventIdentityOrphaned, uuid.Nil, 0, email, cause.Error())
		metrics.Registrations.WithLabelValues("orphaned").Inc()

		return
	}

	cctx, cancel := detachedTimeout(ctx)
	defer cancel()

	if err := srv.client.DeleteUser(cctx, user.ID, srv.traccar.AdminEmail, srv.traccar.AdminPassword); err != nil {
		srv.log(ctx).Error("[Signup] Failed to delete orphaned tracking user",
			slog.Int64("tracking_user_id", user.ID),
			slog.String("email", email),
			slog.Any("error", err),
		)
		srv.events.publish(ctx, constants.SyncEventIdentityOrphaned, uuid.Nil, user.ID, email,
			fmt.Sprintf("signup failed: %v; delete failed: %v", cause, err))
		metrics.Registrations.WithLabelValues("orphaned").Inc()

		return
	}

	srv.log(ctx).Info("[Signup] Removed tracking user after signup failure", slog.Int64("tracking_user_id", user.ID))
	metrics.Registrations.WithLabelValues("compensated").Inc()
}

// Login signs in to the primary provider and requires a fresh tracking session.
// When the tracking session cannot be obtained the primary session is signed out again.
func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	session, err := srv.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, mapProviderError(err)
	}

	profile, err := srv.profiles.FindByUserID(ctx, session.Account.ID)
	if err != nil {
		srv.rollbackLogin(ctx, session, err)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	refreshed, err := srv.tracking.RefreshSession(ctx, email, password, profile.ID)
	if err != nil {
		srv.rollbackLogin(ctx, session, err)

		return nil, errors.Wrapf(err, "login rolled back (%s)", domainerrors.TrackingOutcome(err))
	}

	srv.log(ctx).Info("[Login] Login completed", slog.String("account_id", session.Account.ID.String()))

	return &usecase.LoginOutput{
		Session:            session,
		Profile:            profile,
		TrackingCredential: refreshed.Credential,
		TrackingExpiresAt:  refreshed.ExpiresAt,
	}, nil
}

func (srv *accountService) rollbackLogin(ctx context.Context, session *entity.AccountSession, cause error) {
	srv.log(ctx).Warn("[Login] Tracking session unavailable, rolling back login",
		slog.String("account_id", session.Account.ID.String()),
		slog.String("outcome", string(domainerrors.TrackingOutcome(cause))),
		slog.Any("error", cause),
	)

	cctx, cancel := detachedTimeout(ctx)
	defer cancel()

	if err := srv.provider.SignOut(cctx, session.AccessToken); err != nil {
		srv.log(ctx).Error("[Login] Failed to sign out after rollback",
			slog.String("account_id", session.Account.ID.String()),
			slog.Any("error", err),
		)
	}
}

// Logout closes the tracking session when one is stored, then signs out of the primary provider.
func (srv *accountService) Logout(ctx context.Context, accessToken string, profileID uuid.UUID) error {
	if profileID != uuid.Nil {
		credential, err := srv.tracking.ResolveCredential(ctx, profileID)
		if err == nil {
			if err := srv.client.CloseSession(ctx, credential); err != nil {
				srv.log(ctx).Warn("[Logout] Failed to close tracking session",
					slog.String("profile_id", profileID.String()),
					slog.Any("error", err),
				)
			}
		} else {
			srv.log(ctx).Debug("[Logout] No tracking session to close", slog.Any("error", err))
		}
	}

	if err := srv.provider.SignOut(ctx, accessToken); err != nil {
		return mapProviderError(err)
	}

	return nil
}

// Authenticate resolves the account behind accessToken and its profile.
func (srv *accountService) Authenticate(ctx context.Context, accessToken string) (*entity.Account, *entity.Profile, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, nil, domainerrors.ErrUnauthorized
	}

	account, err := srv.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, service.ErrAccountTokenInvalid) {
			return nil, nil, domainerrors.ErrUnauthorized
		}

		return nil, nil, mapProviderError(err)
	}

	profile, err := srv.profiles.FindByUserID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil, domainerrors.ErrProfileNotFound
		}

		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return account, profile, nil
}

// ChangePassword verifies the current password, updates the primary account and then
// mirrors the change on the tracking user. The tracking side is best effort.
func (srv *accountService) ChangePassword(ctx context.Context, account *entity.Account, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domainerrors.ErrValidationFailed.WithDetails("current and new password are required")
	}
	if len(newPassword) < srv.minLength {
		return domainerrors.ErrPasswordTooShort.WithDetails(fmt.Sprintf("password must be at least %d characters", srv.minLength))
	}

	if err := srv.verifyPassword(ctx, account.Email, currentPassword); err != nil {
		return err
	}
	if currentPassword == newPassword {
		return domainerrors.ErrPasswordUnchanged
	}

	if _, err := srv.provider.UpdateUser(ctx, account.ID, entity.AccountUpdate{Password: &newPassword}); err != nil {
		return mapProviderError(err)
	}

	srv.syncTrackingUser(ctx, account,
		func(m *entity.IdentityMapping) (string, string) { return m.TrackingUsername, currentPassword },
		func(u *entity.TrackingUser) { u.Password = newPassword },
		newPassword,
	)

	return nil
}

// ChangeEmail verifies the password and updates the login email on both systems.
func (srv *accountService) ChangeEmail(ctx context.Context, account *entity.Account, newEmail, password string) (*entity.Account, error) {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if err := srv.validate.Var(newEmail, "required,email"); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}
	if strings.EqualFold(newEmail, account.Email) {
		return nil, domainerrors.ErrEmailUnchanged
	}
	if password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	if err := srv.verifyPassword(ctx, account.Email, password); err != nil {
		return nil, err
	}

	updated, err := srv.provider.UpdateUser(ctx, account.ID, entity.AccountUpdate{Email: &newEmail})
	if err != nil {
		return nil, mapProviderError(err)
	}

	srv.syncTrackingUser(ctx, updated,
		func(m *entity.IdentityMapping) (string, string) { return m.TrackingUsername, password },
		func(u *entity.TrackingUser) {
			u.Email = newEmail
			u.Password = password
		},
		password,
	)

	return updated, nil
}

// ForgotPassword requests recovery mail from both systems and never reports whether the email exists.
func (srv *accountService) ForgotPassword(ctx context.Context, email, redirectTo string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}

	redirectTo = strings.TrimSpace(redirectTo)
	if redirectTo == "" {
		redirectTo = srv.siteURL + resetPasswordPath
	}

	if err := srv.provider.ResetPasswordForEmail(ctx, email, redirectTo); err != nil {
		srv.log(ctx).Error("[ForgotPassword] Failed to send recovery email", slog.Any("error", err))
	}

	if err := srv.client.ResetPassword(ctx, email); err != nil {
		srv.log(ctx).Warn("[ForgotPassword] Tracking password reset request failed", slog.Any("error", err))
	}

	return nil
}

// ResetPassword redeems a recovery token and sets the new password. The tracking user is
// re-synchronized with admin credentials because the old password is unknown here.
func (srv *accountService) ResetPassword(ctx context.Context, tokenHash, newPassword string) error {
	if strings.TrimSpace(tokenHash) == "" {
		return domainerrors.ErrInvalidRecoveryToken
	}
	if len(newPassword) < srv.minLength {
		return domainerrors.ErrPasswordTooShort.WithDetails(fmt.Sprintf("password must be at least %d characters", srv.minLength))
	}

	session, err := srv.provider.VerifyOtp(ctx, tokenHash, entity.RecoveryKindRecovery)
	if err != nil {
		if errors.Is(err, service.ErrAccountTokenInvalid) {
			return domainerrors.ErrInvalidRecoveryToken
		}

		return mapProviderError(err)
	}

	account, err := srv.provider.UpdateUser(ctx, session.Account.ID, entity.AccountUpdate{Password: &newPassword})
	if err != nil {
		return mapProviderError(err)
	}

	if srv.traccar.HasAdminCredentials() {
		srv.syncTrackingUser(ctx, account,
			func(*entity.IdentityMapping) (string, string) { return srv.traccar.AdminEmail, srv.traccar.AdminPassword },
			func(u *entity.TrackingUser) { u.Password = newPassword },
			newPassword,
		)
	} else {
		srv.log(ctx).Warn("[ResetPassword] Admin credentials not configured, tracking password not updated",
			slog.String("account_id", account.ID.String()),
		)
	}

	if err := srv.provider.SignOut(ctx, session.AccessToken); err != nil {
		srv.log(ctx).Warn("[ResetPassword] Failed to close recovery session", slog.Any("error", err))
	}

	return nil
}

// ExchangeCode redeems a callback code for a primary session.
func (srv *accountService) ExchangeCode(ctx context.Context, code string) (*entity.AccountSession, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrInvalidRecoveryToken
	}

	session, err := srv.provider.ExchangeCodeForSession(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrAccountTokenInvalid) {
			return nil, domainerrors.ErrInvalidRecoveryToken
		}

		return nil, mapProviderError(err)
	}

	return session, nil
}

// verifyPassword signs in with the given password and closes the verification session.
func (srv *accountService) verifyPassword(ctx context.Context, email, password string) error {
	session, err := srv.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return mapProviderError(err)
	}

	if err := srv.provider.SignOut(ctx, session.AccessToken); err != nil {
		srv.log(ctx).Warn("[Account] Failed to close verification session", slog.Any("error", err))
	}

	return nil
}

// syncTrackingUser rewrites the tracking user of account and refreshes its session with
// loginPassword. Failures are logged and recorded on the mapping, never returned.
func (srv *accountService) syncTrackingUser(
	ctx context.Context,
	account *entity.Account,
	auth func(*entity.IdentityMapping) (email, password string),
	apply func(*entity.TrackingUser),
	loginPassword string,
) {
	logger := srv.log(ctx).With(slog.String("account_id", account.ID.String()))

	profile, err := srv.profiles.FindByUserID(ctx, account.ID)
	if err != nil {
		logger.Warn("[Account] No profile, skipping tracking update", slog.Any("error", err))

		return
	}

	mapping, err := srv.mappings.FindByProfileID(ctx, profile.ID)
	if err != nil || mapping.TrackingUserID == nil {
		logger.Warn("[Account] Tracking identity unknown, skipping tracking update", slog.Any("error", err))

		return
	}

	user := &entity.TrackingUser{
		ID:    *mapping.TrackingUserID,
		Name:  profile.FullName(),
		Email: mapping.TrackingUsername,
	}
	if user.Name == "" {
		user.Name = account.Name
	}
	apply(user)

	authEmail, authPassword := auth(mapping)
	if _, err := srv.client.UpdateUser(ctx, user.ID, user, authEmail, authPassword); err != nil {
		logger.Warn("[Account] Failed to update tracking user", slog.Int64("tracking_user_id", user.ID), slog.Any("error", err))
		if recErr := srv.mappings.RecordSyncError(ctx, profile.ID, err.Error()); recErr != nil {
			logger.Error("[Account] Failed to record sync error", slog.Any("error", recErr))
		}

		return
	}

	if _, err := srv.tracking.RefreshSession(ctx, user.Email, loginPassword, profile.ID); err != nil {
		logger.Warn("[Account] Tracking session refresh after update failed", slog.Any("error", err))
	}
}

// mapProviderError maps primary provider failures onto application errors.
func mapProviderError(err error) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	switch {
	case errors.Is(err, service.ErrAccountInvalidCredentials):
		return domainerrors.ErrInvalidCredentials
	case errors.Is(err, service.ErrAccountAlreadyExists):
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, service.ErrAccountNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, service.ErrAccountTokenInvalid):
		return domainerrors.ErrUnauthorized
	default:
		return errors.Wrap(err, "account provider failure")
	}
}

// detachedTimeout keeps cleanup work alive after the request context is cancelled.
func detachedTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
}
