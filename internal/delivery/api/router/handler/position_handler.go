package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"trackio/internal/delivery/api/response"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/errors"
	"trackio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// PositionHandlerParams holds dependencies for PositionHandler, injected by Fx.
type PositionHandlerParams struct {
	fx.In

	PositionUC usecase.PositionUsecase
	Logger     *slog.Logger
}

// PositionHandler serves position history and latest fixes.
type PositionHandler struct {
	positionUC usecase.PositionUsecase
	logger     *slog.Logger
}

// NewPositionHandler is the constructor for PositionHandler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	return &PositionHandler{
		positionUC: params.PositionUC,
		logger:     params.Logger,
	}
}

// GetPositions returns positions as JSON, or as a GeoJSON FeatureCollection with format=geojson.
func (h *PositionHandler) GetPositions(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	query, err := parsePositionQuery(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if c.QueryParam("format") == formatGeoJSON {
		fc, err := h.positionUC.GetPositionsGeoJSON(ctx, profile.ID, query)
		if err != nil {
			return errors.WithStack(err)
		}

		return c.JSON(http.StatusOK, fc)
	}

	positions, err := h.positionUC.GetPositions(ctx, profile.ID, query)
	if err != nil {
		return errors.WithStack(err)
	}
	if positions == nil {
		positions = []entity.Position{}
	}

	return response.Success(c, http.StatusOK, positions)
}

func parsePositionQuery(c echo.Context) (entity.PositionQuery, error) {
	var query entity.PositionQuery

	if raw := c.QueryParam("deviceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return query, domainerrors.ErrValidationFailed.WithDetails("deviceId must be a positive integer")
		}
		query.DeviceID = &id
	}

	from, err := parseTimeParam(c, "from")
	if err != nil {
		return query, err
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		return query, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return query, domainerrors.ErrValidationFailed.WithDetails("to must not be before from")
	}
	query.From, query.To = from, to

	return query, nil
}

func parseTimeParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an RFC3339 timestamp")
	}

	return &t, nil
}
