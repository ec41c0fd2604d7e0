package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"trackio/internal/delivery/api/response"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/errors"
	"trackio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// DeviceRequest is the body of device create and update requests.
type DeviceRequest struct {
	Name       string         `json:"name" validate:"required"`
	UniqueID   string         `json:"uniqueId" validate:"required"`
	Phone      string         `json:"phone"`
	Model      string         `json:"model"`
	Contact    string         `json:"contact"`
	Category   string         `json:"category"`
	GroupID    int64          `json:"groupId"`
	Disabled   bool           `json:"disabled"`
	Attributes map[string]any `json:"attributes"`
}

func (r *DeviceRequest) toEntity() *entity.Device {
	return &entity.Device{
		Name:       r.Name,
		UniqueID:   r.UniqueID,
		Phone:      r.Phone,
		Model:      r.Model,
		Contact:    r.Contact,
		Category:   r.Category,
		GroupID:    r.GroupID,
		Disabled:   r.Disabled,
		Attributes: r.Attributes,
	}
}

func deviceIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("device id must be a positive integer")
	}

	return id, nil
}

// ListDevices returns the caller's devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	if devices == nil {
		devices = []entity.Device{}
	}

	return response.Success(c, http.StatusOK, devices)
}

// GetDevice returns one device of the caller.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	deviceID, err := deviceIDParam(c)
	if err != nil {
		return err
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), profile.ID, deviceID)
	if err != nil {
		return errors.WithStack(err)
	}
	if device == nil {
		return domainerrors.ErrTrackingResourceNotFound
	}

	return response.Success(c, http.StatusOK, device)
}

// CreateDevice registers a new device.
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	var req DeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), profile.ID, req.toEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// UpdateDevice replaces a device.
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	deviceID, err := deviceIDParam(c)
	if err != nil {
		return err
	}

	var req DeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device := req.toEntity()
	device.ID = deviceID

	updated, err := h.deviceUC.UpdateDevice(c.Request().Context(), profile.ID, deviceID, device)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// DeleteDevice removes a device.
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	_, profile, err := principal(c)
	if err != nil {
		return err
	}

	deviceID, err := deviceIDParam(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), profile.ID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
