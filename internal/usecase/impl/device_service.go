package impl

import (
	"context"
	"log/slog"

	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"
	"trackio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	tracking usecase.TrackingSessionUsecase
	client   service.TrackingClient
	logger   *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	Tracking usecase.TrackingSessionUsecase
	Client   service.TrackingClient
	Logger   *slog.Logger
}

// NewDeviceService creates a new device service
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		tracking: params.Tracking,
		client:   params.Client,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListDevices returns every device visible to the profile's tracking user.
func (s *deviceService) ListDevices(ctx context.Context, profileID uuid.UUID) ([]entity.Device, error) {
	credential, err := s.tracking.ResolveCredential(ctx, profileID)
	if err != nil {
		return nil, err
	}

	devices, err := s.client.ListDevices(ctx, credential)
	if err != nil {
		return nil, s.fail(ctx, "list", profileID, 0, err)
	}

	return devices, nil
}

// GetDevice returns nil without error when the device does not exist.
func (s *deviceService) GetDevice(ctx context.Context, profileID uuid.UUID, deviceID int64) (*entity.Device, error) {
	credential, err := s.tracking.ResolveCredential(ctx, profileID)
	if err != nil {
		return nil, err
	}

	device, err := s.client.GetDevice(ctx, deviceID, credential)
	if err != nil {
		return nil, s.fail(ctx, "get", profileID, deviceID, err)
	}

	return device, nil
}

// CreateDevice registers a device on the tracking service.
func (s *deviceService) CreateDevice(ctx context.Context, profileID uuid.UUID, device *entity.Device) (*entity.Device, error) {
	credential, err := s.tracking.ResolveCredential(ctx, profileID)
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateDevice(ctx, device, credential)
	if err != nil {
		return nil, s.fail(ctx, "create", profileID, 0, err)
	}

	s.log(ctx).Info("Device created",
		slog.String("profile_id", profileID.String()),
		slog.Int64("device_id", created.ID),
	)

	return created, nil
}

// UpdateDevice replaces a device. The caller keeps UniqueID unchanged.
func (s *deviceService) UpdateDevice(ctx context.Context, profileID uuid.UUID, deviceID int64, device *entity.Device) (*entity.Device, error) {
	credential, err := s.tracking.ResolveCredential(ctx, profileID)
	if err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateDevice(ctx, deviceID, device, credential)
	if err != nil {
		return nil, s.fail(ctx, "update", profileID, deviceID, err)
	}

	return updated, nil
}

// DeleteDevice removes a device.
func (s *deviceService) DeleteDevice(ctx context.Context, profileID uuid.UUID, deviceID int64) error {
	credential, err := s.tracking.ResolveCredential(ctx, profileID)
	if err != nil {
		return err
	}

	if err := s.client.DeleteDevice(ctx, deviceID, credential); err != nil {
		return s.fail(ctx, "delete", profileID, deviceID, err)
	}

	s.log(ctx).Info("Device deleted",
		slog.String("profile_id", profileID.String()),
		slog.Int64("device_id", deviceID),
	)

	return nil
}

func (s *deviceService) fail(ctx context.Context, op string, profileID uuid.UUID, deviceID int64, err error) error {
	s.log(ctx).Warn("Device operation failed",
		slog.String("operation", op),
		slog.String("profile_id", profileID.String()),
		slog.Int64("device_id", deviceID),
		slog.Any("error", err),
	)

	return mapOperationError(err)
}
