package handler

import (
	"log/slog"
	"net/http"
	"time"

	"trackio/internal/delivery/api/middleware"
	"trackio/internal/delivery/api/response"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/errors"
	"trackio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves signup, login and credential management.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	BaseURL   string `json:"base_url"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /auth/password/forgot.
type ForgotPasswordRequest struct {
	Email      string `json:"email" validate:"required,email"`
	RedirectTo string `json:"redirect_to"`
}

// ResetPasswordRequest is the body of POST /auth/password/reset.
type ResetPasswordRequest struct {
	TokenHash string `json:"token_hash" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// ExchangeCodeRequest is the body of POST /auth/callback.
type ExchangeCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// ChangePasswordRequest is the body of PUT /account/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangeEmailRequest is the body of PUT /account/email.
type ChangeEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// SessionResponse carries the primary session tokens.
type SessionResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
	Account      AccountResponse `json:"account"`
}

// TrackingSessionResponse carries the tracking-service session.
type TrackingSessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Session   SessionResponse         `json:"session"`
	ProfileID uuid.UUID               `json:"profile_id"`
	Traccar   TrackingSessionResponse `json:"traccar"`
}

// SignupResponse is returned by a successful signup.
type SignupResponse struct {
	Account        AccountResponse `json:"account"`
	ProfileID      uuid.UUID       `json:"profile_id"`
	TrackingUserID int64           `json:"traccar_user_id"`
}

func toAccountResponse(account *entity.Account) AccountResponse {
	if account == nil {
		return AccountResponse{}
	}

	return AccountResponse{ID: account.ID, Email: account.Email, Name: account.Name}
}

func toSessionResponse(session *entity.AccountSession) SessionResponse {
	return SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
		Account:      toAccountResponse(session.Account),
	}
}

// Signup handles account creation.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Signup(c.Request().Context(), usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		BaseURL:   req.BaseURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := SignupResponse{
		Account:   toAccountResponse(output.Account),
		ProfileID: output.Profile.ID,
	}
	if output.TrackingUser != nil {
		resp.TrackingUserID = output.TrackingUser.ID
	}

	return response.Success(c, http.StatusCreated, resp)
}

// Login signs in and returns both sessions.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Session:   toSessionResponse(output.Session),
		ProfileID: output.Profile.ID,
		Traccar: TrackingSessionResponse{
			Token:     output.TrackingCredential.String(),
			ExpiresAt: output.TrackingExpiresAt,
		},
	})
}

// Logout closes both sessions of the caller.
func (h *AccountHandler) Logout(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	token, _ := middleware.BearerToken(c)
	if err := h.accountUC.Logout(c.Request().Context(), token, profile.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "logged out")
}

// ForgotPassword always answers with the same message whether or not the email exists.
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.ForgotPassword(c.Request().Context(), req.Email, req.RedirectTo); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusAccepted, "if the email is registered, a recovery link has been sent")
}

// ResetPassword redeems a recovery token.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), req.TokenHash, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "password updated")
}

// ExchangeCode redeems a callback code for a primary session.
func (h *AccountHandler) ExchangeCode(c echo.Context) error {
	var req ExchangeCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return domainerrors.ErrInvalidRecoveryToken
	}

	session, err := h.accountUC.ExchangeCode(c.Request().Context(), req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(session))
}

// ChangePassword updates the caller's password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	account, _, err := principal(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.ChangePassword(c.Request().Context(), account, req.CurrentPassword, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "password updated")
}

// ChangeEmail updates the caller's login email.
func (h *AccountHandler) ChangeEmail(c echo.Context) error {
	account, _, err := principal(c)
	if err != nil {
		return err
	}

	var req ChangeEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.accountUC.ChangeEmail(c.Request().Context(), account, req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(updated))
}
