package impl

import (
	"context"
	"testing"
	"time"

	"trackio/internal/domain/constants"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/repository"
	"trackio/internal/domain/service"
	"trackio/internal/errors"
	mockRepo "trackio/internal/mocks/repository"
	mockSvc "trackio/internal/mocks/service"
	mockUsecase "trackio/internal/mocks/usecase"
	"trackio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountMocks struct {
	provider  *mockSvc.MockAccountProvider
	tracking  *mockUsecase.MockTrackingSessionUsecase
	client    *mockSvc.MockTrackingClient
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	profiles  *mockRepo.MockProfileRepository
	mappings  *mockRepo.MockIdentityMappingRepository
	txProfile *mockRepo.MockProfileRepository
	txMapping *mockRepo.MockIdentityMappingRepository
	mailer    *mockSvc.MockMailer
	publisher *mockSvc.MockSyncEventPublisher
}

func newAccountServiceForTest(t *testing.T) (*accountService, accountMocks) {
	t.Helper()

	m := accountMocks{
		provider:  mockSvc.NewMockAccountProvider(t),
		tracking:  mockUsecase.NewMockTrackingSessionUsecase(t),
		client:    mockSvc.NewMockTrackingClient(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		profiles:  mockRepo.NewMockProfileRepository(t),
		mappings:  mockRepo.NewMockIdentityMappingRepository(t),
		txProfile: mockRepo.NewMockProfileRepository(t),
		txMapping: mockRepo.NewMockIdentityMappingRepository(t),
		mailer:    mockSvc.NewMockMailer(t),
		publisher: mockSvc.NewMockSyncEventPublisher(t),
	}

	srv := NewAccountService(AccountServiceParams{
		Provider:  m.provider,
		Tracking:  m.tracking,
		Client:    m.client,
		TxManager: m.txManager,
		Profiles:  m.profiles,
		Mappings:  m.mappings,
		Mailer:    m.mailer,
		Publisher: m.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*accountService)
	srv.now = func() time.Time { return fixedNow }
	srv.events.now = srv.now

	return srv, m
}

// expectTransaction runs the transaction body against the factory mocks.
func (m accountMocks) expectTransaction(ctx context.Context) {
	m.factory.EXPECT().ProfileRepo().Return(m.txProfile).Maybe()
	m.factory.EXPECT().IdentityMappingRepo().Return(m.txMapping).Maybe()
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func signupInput() usecase.SignupInput {
	return usecase.SignupInput{
		FirstName: " Ana ",
		LastName:  "Gomez",
		Email:     " Ana@Example.com ",
		Password:  "secret1",
	}
}

func registeredAna() *usecase.RegisterTrackingOutput {
	expiry := fixedNow.Add(7 * 24 * time.Hour)

	return &usecase.RegisterTrackingOutput{
		TrackingUser: &entity.TrackingUser{ID: 42, Name: "Ana Gomez", Email: "ana@example.com"},
		Credential:   entity.NewSessionCredential("abc123", entity.CredentialSourceCookie),
		ExpiresAt:    &expiry,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	accountID := uuid.New()
	profileID := uuid.New()

	m.tracking.EXPECT().RegisterTrackingIdentity(ctx, usecase.RegisterTrackingInput{
		Name:      "Ana Gomez",
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana@example.com",
		Password:  "secret1",
	}).Return(registeredAna(), nil)
	m.provider.EXPECT().SignUp(ctx, "ana@example.com", "secret1", "Ana Gomez").
		Return(&entity.Account{ID: accountID, Email: "ana@example.com", Name: "Ana Gomez"}, nil)
	m.expectTransaction(ctx)
	m.txProfile.EXPECT().CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, accountID, profile.UserID)
			profile.ID = profileID
		}).
		Return(nil)
	m.txMapping.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.IdentityMapping")).
		RunAndReturn(func(_ context.Context, mapping *entity.IdentityMapping) (*entity.IdentityMapping, error) {
			assert.Equal(t, profileID, mapping.ProfileID)
			assert.Equal(t, int64(42), *mapping.TrackingUserID)
			assert.Equal(t, "abc123", *mapping.SessionToken)

			return mapping, nil
		})
	m.mailer.EXPECT().SendWelcomeEmail(ctx, "ana@example.com", "Ana Gomez", "secret1", "https://app.example.com").Return(nil)

	out, err := srv.Signup(ctx, signupInput())

	require.NoError(t, err)
	assert.Equal(t, accountID, out.Account.ID)
	assert.Equal(t, profileID, out.Profile.ID)
	assert.Equal(t, int64(42), out.TrackingUser.ID)
}

func TestAccountService_Signup_TrackingFailureCreatesNothing(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()

	m.tracking.EXPECT().RegisterTrackingIdentity(ctx, mock.Anything).Return(nil, domainerrors.ErrTrackingUserRejected)

	_, err := srv.Signup(ctx, signupInput())

	assert.ErrorIs(t, err, domainerrors.ErrTrackingUserRejected)
}

func TestAccountService_Signup_Validation(t *testing.T) {
	srv, _ := newAccountServiceForTest(t)

	input := signupInput()
	input.Email = "not-an-email"
	_, err := srv.Signup(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input = signupInput()
	input.Password = "abc"
	_, err = srv.Signup(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAccountService_Signup_ProviderFailureDeletesTrackingUser(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()

	m.tracking.EXPECT().RegisterTrackingIdentity(ctx, mock.Anything).Return(registeredAna(), nil)
	m.provider.EXPECT().SignUp(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrAccountAlreadyExists)
	m.client.EXPECT().DeleteUser(mock.Anything, int64(42), "admin@example.com", "admin-secret").Return(nil)

	_, err := srv.Signup(ctx, signupInput())

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Signup_FailedCompensationPublishesOrphan(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()

	m.tracking.EXPECT().RegisterTrackingIdentity(ctx, mock.Anything).Return(registeredAna(), nil)
	m.provider.EXPECT().SignUp(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("provider down"))
	m.client.EXPECT().DeleteUser(mock.Anything, int64(42), mock.Anything, mock.Anything).Return(service.ErrTrackingTransient)
	m.publisher.EXPECT().PublishSyncEvent(mock.Anything, mock.AnythingOfType("*entity.SyncEvent")).
		Run(func(_ context.Context, event *entity.SyncEvent) {
			assert.Equal(t, constants.SyncEventIdentityOrphaned, event.Type)
			assert.Equal(t, int64(42), event.TrackingUserID)
			assert.Equal(t, "ana@example.com", event.Email)
			assert.Contains(t, event.Reason, "provider down")
		}).
		Return(nil)

	_, err := srv.Signup(ctx, signupInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")
}

func TestAccountService_Signup_ProfileFailureRollsBackBothSides(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	accountID := uuid.New()

	m.tracking.EXPECT().RegisterTrackingIdentity(ctx, mock.Anything).Return(registeredAna(), nil)
	m.provider.EXPECT().SignUp(ctx, mock.Anything, mock.Anything, mock.Anything).Return(&entity.Account{ID: accountID}, nil)
	m.expectTransaction(ctx)
	m.txProfile.EXPECT().CreateProfile(ctx, mock.Anything).Return(repository.ErrDuplicateProfile)
	m.provider.EXPECT().DeleteUser(mock.Anything, accountID).Return(nil)
	m.client.EXPECT().DeleteUser(mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)

	_, err := srv.Signup(ctx, signupInput())

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func anaSession() *entity.AccountSession {
	return &entity.AccountSession{
		ID:          uuid.New(),
		AccessToken: "access-token",
		Account:     &entity.Account{ID: uuid.New(), Email: "ana@example.com"},
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	session := anaSession()
	profile := &entity.Profile{ID: uuid.New(), UserID: session.Account.ID}
	expiry := fixedNow.Add(time.Hour)

	m.provider.EXPECT().SignInWithPassword(ctx, "ana@example.com", "secret1").Return(session, nil)
	m.profiles.EXPECT().FindByUserID(ctx, session.Account.ID).Return(profile, nil)
	m.tracking.EXPECT().RefreshSession(ctx, "ana@example.com", "secret1", profile.ID).Return(&usecase.RefreshSessionOutput{
		Credential: entity.NewSessionCredential("cookie-1", entity.CredentialSourceCookie),
		ExpiresAt:  expiry,
	}, nil)

	out, err := srv.Login(ctx, "ana@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.Session.AccessToken)
	assert.Equal(t, "cookie-1", out.TrackingCredential.Value)
	assert.Equal(t, expiry, out.TrackingExpiresAt)
}

func TestAccountService_Login_NormalizesEmail(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	session := anaSession()
	profile := &entity.Profile{ID: uuid.New(), UserID: session.Account.ID}

	m.provider.EXPECT().SignInWithPassword(ctx, "ana@example.com", "secret1").Return(session, nil)
	m.profiles.EXPECT().FindByUserID(ctx, session.Account.ID).Return(profile, nil)
	m.tracking.EXPECT().RefreshSession(ctx, "ana@example.com", "secret1", profile.ID).Return(&usecase.RefreshSessionOutput{
		Credential: entity.NewSessionCredential("cookie-1", entity.CredentialSourceCookie),
		ExpiresAt:  fixedNow.Add(time.Hour),
	}, nil)

	_, err := srv.Login(ctx, "  Ana@Example.COM ", "secret1")

	require.NoError(t, err)
}

func TestAccountService_Login_RollsBackWhenTrackingFails(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	session := anaSession()
	profile := &entity.Profile{ID: uuid.New(), UserID: session.Account.ID}

	m.provider.EXPECT().SignInWithPassword(ctx, mock.Anything, mock.Anything).Return(session, nil)
	m.profiles.EXPECT().FindByUserID(ctx, session.Account.ID).Return(profile, nil)
	m.tracking.EXPECT().RefreshSession(ctx, mock.Anything, mock.Anything, profile.ID).
		Return(nil, domainerrors.ErrTrackingCredentialsInvalid.WrapMessage("tracking login rejected"))
	m.provider.EXPECT().SignOut(mock.Anything, "access-token").Return(nil)

	out, err := srv.Login(ctx, "ana@example.com", "secret1")

	assert.Nil(t, out)
	require.ErrorIs(t, err, domainerrors.ErrTrackingCredentialsInvalid)
	assert.Equal(t, domainerrors.OutcomeCredentialsInvalid, domainerrors.TrackingOutcome(err))
	assert.Contains(t, err.Error(), "login rolled back")
}

func TestAccountService_Login_MissingProfile(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	session := anaSession()

	m.provider.EXPECT().SignInWithPassword(ctx, mock.Anything, mock.Anything).Return(session, nil)
	m.profiles.EXPECT().FindByUserID(ctx, session.Account.ID).Return(nil, repository.ErrProfileNotFound)
	m.provider.EXPECT().SignOut(mock.Anything, "access-token").Return(nil)

	_, err := srv.Login(ctx, "ana@example.com", "secret1")

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Equal(t, domainerrors.OutcomeNotSynchronized, domainerrors.TrackingOutcome(err))
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()

	m.provider.EXPECT().SignInWithPassword(ctx, mock.Anything, mock.Anything).Return(nil, service.ErrAccountInvalidCredentials)

	_, err := srv.Login(ctx, "ana@example.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Logout_ClosesTrackingSession(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()
	credential := entity.NewSessionCredential("cookie-1", entity.CredentialSourceCookie)

	m.tracking.EXPECT().ResolveCredential(ctx, profileID).Return(credential, nil)
	m.client.EXPECT().CloseSession(ctx, credential).Return(service.ErrTrackingTransient)
	m.provider.EXPECT().SignOut(ctx, "access-token").Return(nil)

	require.NoError(t, srv.Logout(ctx, "access-token", profileID))
}

func TestAccountService_Logout_WithoutTrackingSession(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()

	m.tracking.EXPECT().ResolveCredential(ctx, profileID).Return(nil, domainerrors.ErrTrackingNotSynchronized)
	m.provider.EXPECT().SignOut(ctx, "access-token").Return(nil)

	require.NoError(t, srv.Logout(ctx, "access-token", profileID))
}

func TestAccountService_Authenticate(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New()}
	profile := &entity.Profile{ID: uuid.New(), UserID: account.ID}

	_, _, err := srv.Authenticate(ctx, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	m.provider.EXPECT().GetUser(ctx, "expired").Return(nil, service.ErrAccountTokenInvalid).Once()
	_, _, err = srv.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	m.provider.EXPECT().GetUser(ctx, "valid").Return(account, nil).Once()
	m.profiles.EXPECT().FindByUserID(ctx, account.ID).Return(profile, nil).Once()
	gotAccount, gotProfile, err := srv.Authenticate(ctx, "valid")
	require.NoError(t, err)
	assert.Equal(t, account, gotAccount)
	assert.Equal(t, profile, gotProfile)
}

func TestAccountService_ChangePassword_SyncsTrackingUser(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", Name: "Ana"}
	profile := &entity.Profile{ID: uuid.New(), UserID: account.ID, FirstName: "Ana", LastName: "Gomez"}
	verify := anaSession()

	m.provider.EXPECT().SignInWithPassword(ctx, "ana@example.com", "secret1").Return(verify, nil)
	m.provider.EXPECT().SignOut(ctx, "access-token").Return(nil)
	m.provider.EXPECT().UpdateUser(ctx, account.ID, mock.AnythingOfType("entity.AccountUpdate")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, update entity.AccountUpdate) (*entity.Account, error) {
			require.NotNil(t, update.Password)
			assert.Equal(t, "secret2", *update.Password)
			assert.Nil(t, update.Email)

			return account, nil
		})
	m.profiles.EXPECT().FindByUserID(ctx, account.ID).Return(profile, nil)
	m.mappings.EXPECT().FindByProfileID(ctx, profile.ID).Return(&entity.IdentityMapping{
		ProfileID:        profile.ID,
		TrackingUserID:   ptr(int64(42)),
		TrackingUsername: "ana@example.com",
	}, nil)
	m.client.EXPECT().UpdateUser(ctx, int64(42), mock.AnythingOfType("*entity.TrackingUser"), "ana@example.com", "secret1").
		Run(func(_ context.Context, _ int64, user *entity.TrackingUser, _, _ string) {
			assert.Equal(t, "Ana Gomez", user.Name)
			assert.Equal(t, "secret2", user.Password)
		}).
		Return(&entity.TrackingUser{ID: 42}, nil)
	m.tracking.EXPECT().RefreshSession(ctx, "ana@example.com", "secret2", profile.ID).Return(&usecase.RefreshSessionOutput{}, nil)

	require.NoError(t, srv.ChangePassword(ctx, account, "secret1", "secret2"))
}

func TestAccountService_ChangePassword_TrackingFailureIsRecorded(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}
	profile := &entity.Profile{ID: uuid.New(), UserID: account.ID}

	m.provider.EXPECT().SignInWithPassword(ctx, mock.Anything, mock.Anything).Return(anaSession(), nil)
	m.provider.EXPECT().SignOut(ctx, mock.Anything).Return(nil)
	m.provider.EXPECT().UpdateUser(ctx, account.ID, mock.Anything).Return(account, nil)
	m.profiles.EXPECT().FindByUserID(ctx, account.ID).Return(profile, nil)
	m.mappings.EXPECT().FindByProfileID(ctx, profile.ID).Return(&entity.IdentityMapping{TrackingUserID: ptr(int64(42))}, nil)
	m.client.EXPECT().UpdateUser(ctx, int64(42), mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrTrackingTransient)
	m.mappings.EXPECT().RecordSyncError(ctx, profile.ID, mock.AnythingOfType("string")).Return(nil)

	require.NoError(t, srv.ChangePassword(ctx, account, "secret1", "secret2"))
}

func TestAccountService_ChangePassword_Rejections(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}

	assert.ErrorIs(t, srv.ChangePassword(ctx, account, "", "secret2"), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, srv.ChangePassword(ctx, account, "secret1", "abc"), domainerrors.ErrPasswordTooShort)

	m.provider.EXPECT().SignInWithPassword(ctx, "ana@example.com", "wrong").Return(nil, service.ErrAccountInvalidCredentials).Once()
	assert.ErrorIs(t, srv.ChangePassword(ctx, account, "wrong", "secret2"), domainerrors.ErrInvalidCredentials)

	m.provider.EXPECT().SignInWithPassword(ctx, "ana@example.com", "secret1").Return(anaSession(), nil).Once()
	m.provider.EXPECT().SignOut(ctx, "access-token").Return(nil).Once()
	assert.ErrorIs(t, srv.ChangePassword(ctx, account, "secret1", "secret1"), domainerrors.ErrPasswordUnchanged)
}

func TestAccountService_ChangeEmail(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}
	updated := &entity.Account{ID: account.ID, Email: "ana@new.example.com"}
	profile := &entity.Profile{ID: uuid.New(), UserID: account.ID, FirstName: "Ana"}

	_, err := srv.ChangeEmail(ctx, account, "ANA@example.com", "secret1")
	assert.ErrorIs(t, err, domainerrors.ErrEmailUnchanged)

	m.provider.EXPECT().SignInWithPassword(ctx, "ana@example.com", "secret1").Return(anaSession(), nil)
	m.provider.EXPECT().SignOut(ctx, "access-token").Return(nil)
	m.provider.EXPECT().UpdateUser(ctx, account.ID, mock.Anything).Return(updated, nil)
	m.profiles.EXPECT().FindByUserID(ctx, account.ID).Return(profile, nil)
	m.mappings.EXPECT().FindByProfileID(ctx, profile.ID).Return(&entity.IdentityMapping{
		TrackingUserID:   ptr(int64(42)),
		TrackingUsername: "ana@example.com",
	}, nil)
	m.client.EXPECT().UpdateUser(ctx, int64(42), mock.Anything, "ana@example.com", "secret1").
		Run(func(_ context.Context, _ int64, user *entity.TrackingUser, _, _ string) {
			assert.Equal(t, "ana@new.example.com", user.Email)
		}).
		Return(&entity.TrackingUser{ID: 42}, nil)
	m.tracking.EXPECT().RefreshSession(ctx, "ana@new.example.com", "secret1", profile.ID).Return(&usecase.RefreshSessionOutput{}, nil)

	got, err := srv.ChangeEmail(ctx, account, " Ana@New.Example.com ", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "ana@new.example.com", got.Email)
}

func TestAccountService_ForgotPassword_AlwaysSucceeds(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()

	m.provider.EXPECT().ResetPasswordForEmail(ctx, "ana@example.com", "https://app.example.com/auth/reset-password").
		Return(errors.New("smtp down"))
	m.client.EXPECT().ResetPassword(ctx, "ana@example.com").Return(service.ErrTrackingNotFound)

	require.NoError(t, srv.ForgotPassword(ctx, "Ana@Example.com", ""))

	assert.ErrorIs(t, srv.ForgotPassword(ctx, "nope", ""), domainerrors.ErrValidationFailed)
}

func TestAccountService_ResetPassword(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	recovery := anaSession()
	profile := &entity.Profile{ID: uuid.New(), UserID: recovery.Account.ID}

	m.provider.EXPECT().VerifyOtp(ctx, "token-hash", entity.RecoveryKindRecovery).Return(recovery, nil)
	m.provider.EXPECT().UpdateUser(ctx, recovery.Account.ID, mock.Anything).Return(recovery.Account, nil)
	m.profiles.EXPECT().FindByUserID(ctx, recovery.Account.ID).Return(profile, nil)
	m.mappings.EXPECT().FindByProfileID(ctx, profile.ID).Return(&entity.IdentityMapping{
		TrackingUserID:   ptr(int64(42)),
		TrackingUsername: "ana@example.com",
	}, nil)
	m.client.EXPECT().UpdateUser(ctx, int64(42), mock.Anything, "admin@example.com", "admin-secret").Return(&entity.TrackingUser{ID: 42}, nil)
	m.tracking.EXPECT().RefreshSession(ctx, "ana@example.com", "secret2", profile.ID).Return(&usecase.RefreshSessionOutput{}, nil)
	m.provider.EXPECT().SignOut(ctx, "access-token").Return(nil)

	require.NoError(t, srv.ResetPassword(ctx, "token-hash", "secret2"))
}

func TestAccountService_ResetPassword_InvalidToken(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()

	assert.ErrorIs(t, srv.ResetPassword(ctx, " ", "secret2"), domainerrors.ErrInvalidRecoveryToken)

	m.provider.EXPECT().VerifyOtp(ctx, "stale", entity.RecoveryKindRecovery).Return(nil, service.ErrAccountTokenInvalid)
	assert.ErrorIs(t, srv.ResetPassword(ctx, "stale", "secret2"), domainerrors.ErrInvalidRecoveryToken)
}

func TestAccountService_ExchangeCode(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	session := anaSession()

	_, err := srv.ExchangeCode(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRecoveryToken)

	m.provider.EXPECT().ExchangeCodeForSession(ctx, "bad").Return(nil, service.ErrAccountTokenInvalid).Once()
	_, err = srv.ExchangeCode(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRecoveryToken)

	m.provider.EXPECT().ExchangeCodeForSession(ctx, "good").Return(session, nil).Once()
	got, err := srv.ExchangeCode(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}
