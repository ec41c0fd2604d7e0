package traccar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trackio/internal/domain/entity"
)

// GetPositions queries positions. Without a device id the service returns the latest fix per device.
func (c *Client) GetPositions(ctx context.Context, credential *entity.SessionCredential, query entity.PositionQuery) ([]entity.Position, error) {
	if err := requireCredential(credential); err != nil {
		return nil, err
	}
	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, &ValidationError{Field: "to", Reason: "must not be before from"}
	}

	params := url.Values{}
	if query.DeviceID != nil {
		params.Set("deviceId", strconv.FormatInt(*query.DeviceID, 10))
	}
	if query.From != nil {
		params.Set("from", query.From.UTC().Format(time.RFC3339))
	}
	if query.To != nil {
		params.Set("to", query.To.UTC().Format(time.RFC3339))
	}

	resp, err := c.Do(ctx, "/positions", RequestOptions{
		Method: http.MethodGet,
		Query:  params,
		Cookie: credential.Value,
	})
	if err != nil {
		return nil, err
	}

	positions := []entity.Position{}
	if err := resp.Decode(&positions); err != nil {
		return nil, err
	}
	if positions == nil {
		positions = []entity.Position{}
	}

	return positions, nil
}
