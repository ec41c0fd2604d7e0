package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"
	"trackio/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// positionService implements the PositionUsecase interface.
type positionService struct {
	tracking usecase.TrackingSessionUsecase
	client   service.TrackingClient
	logger   *slog.Logger
}

// PositionServiceParams holds dependencies for PositionService, injected by Fx.
type PositionServiceParams struct {
	fx.In

	Tracking usecase.TrackingSessionUsecase
	Client   service.TrackingClient
	Logger   *slog.Logger
}

// NewPositionService creates a new position service
func NewPositionService(params PositionServiceParams) usecase.PositionUsecase {
	return &positionService{
		tracking: params.Tracking,
		client:   params.Client,
		logger:   params.Logger,
	}
}

// GetPositions returns the positions matching query for the profile's tracking user.
func (s *positionService) GetPositions(ctx context.Context, profileID uuid.UUID, query entity.PositionQuery) ([]entity.Position, error) {
	credential, err := s.tracking.ResolveCredential(ctx, profileID)
	if err != nil {
		return nil, err
	}

	positions, err := s.client.GetPositions(ctx, credential, query)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Position lookup failed",
			slog.String("profile_id", profileID.String()),
			slog.Any("error", err),
		)

		return nil, mapOperationError(err)
	}

	return positions, nil
}

// GetPositionsGeoJSON returns the same positions as point features in [lon, lat] order.
func (s *positionService) GetPositionsGeoJSON(ctx context.Context, profileID uuid.UUID, query entity.PositionQuery) (*geojson.FeatureCollection, error) {
	positions, err := s.GetPositions(ctx, profileID, query)
	if err != nil {
		return nil, err
	}

	return positionsToFeatureCollection(positions), nil
}

func positionsToFeatureCollection(positions []entity.Position) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range positions {
		p := &positions[i]

		feature := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
		feature.ID = p.ID
		feature.Properties["deviceId"] = p.DeviceID
		feature.Properties["altitude"] = p.Altitude
		feature.Properties["course"] = p.Course
		feature.Properties["valid"] = p.Valid
		if p.Speed != nil {
			feature.Properties["speed"] = *p.Speed
		}
		if p.Address != nil {
			feature.Properties["address"] = *p.Address
		}
		if ts := p.Timestamp(); ts != nil {
			feature.Properties["time"] = ts.UTC().Format(time.RFC3339)
		}

		fc.Append(feature)
	}

	return fc
}
