package usecase

import (
	"context"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// DeviceUsecase proxies device management to the tracking service on behalf of a profile.
type DeviceUsecase interface {
	ListDevices(ctx context.Context, profileID uuid.UUID) ([]entity.Device, error)

	// GetDevice returns nil without error when the device does not exist.
	GetDevice(ctx context.Context, profileID uuid.UUID, deviceID int64) (*entity.Device, error)

	CreateDevice(ctx context.Context, profileID uuid.UUID, device *entity.Device) (*entity.Device, error)

	UpdateDevice(ctx context.Context, profileID uuid.UUID, deviceID int64, device *entity.Device) (*entity.Device, error)

	DeleteDevice(ctx context.Context, profileID uuid.UUID, deviceID int64) error
}

// PositionUsecase reads position history from the tracking service.
type PositionUsecase interface {
	GetPositions(ctx context.Context, profileID uuid.UUID, query entity.PositionQuery) ([]entity.Position, error)

	// GetPositionsGeoJSON renders the positions as a FeatureCollection of points.
	GetPositionsGeoJSON(ctx context.Context, profileID uuid.UUID, query entity.PositionQuery) (*geojson.FeatureCollection, error)
}
