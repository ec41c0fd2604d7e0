package handler

import (
	"log/slog"
	"net/http"

	"trackio/internal/delivery/api/response"
	"trackio/internal/errors"
	"trackio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingSessionUsecase
	Logger     *slog.Logger
}

// TrackingHandler serves tracking-session maintenance for signed-in users.
type TrackingHandler struct {
	trackingUC usecase.TrackingSessionUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// RefreshSessionRequest is the body of POST /api/traccar/refresh-session.
type RefreshSessionRequest struct {
	Password string `json:"password" validate:"required"`
}

// RefreshSession logs the caller in to the tracking service again with their password.
func (h *TrackingHandler) RefreshSession(c echo.Context) error {
	account, profile, err := principal(c)
	if err != nil {
		return err
	}

	var req RefreshSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.trackingUC.RefreshSession(c.Request().Context(), account.Email, req.Password, profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TrackingSessionResponse{
		Token:     output.Credential.String(),
		ExpiresAt: output.ExpiresAt,
	})
}
