package traccar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"trackio/internal/domain/entity"
)

// Device calls always send the credential as a session cookie, whatever its provenance.

func (c *Client) ListDevices(ctx context.Context, credential *entity.SessionCredential) ([]entity.Device, error) {
	if err := requireCredential(credential); err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, "/devices", RequestOptions{Method: http.MethodGet, Cookie: credential.Value})
	if err != nil {
		return nil, err
	}

	devices := []entity.Device{}
	if err := resp.Decode(&devices); err != nil {
		return nil, err
	}
	if devices == nil {
		devices = []entity.Device{}
	}

	return devices, nil
}

func (c *Client) GetDevice(ctx context.Context, id int64, credential *entity.SessionCredential) (*entity.Device, error) {
	if err := requireCredential(credential); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, &ValidationError{Field: "device id", Reason: "must be positive"}
	}

	resp, err := c.Do(ctx, "/devices", RequestOptions{
		Method: http.MethodGet,
		Query:  url.Values{"id": {strconv.FormatInt(id, 10)}},
		Cookie: credential.Value,
	})
	if err != nil {
		return nil, err
	}

	var devices []entity.Device
	if err := resp.Decode(&devices); err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, nil
	}

	return &devices[0], nil
}

func (c *Client) CreateDevice(ctx context.Context, device *entity.Device, credential *entity.SessionCredential) (*entity.Device, error) {
	if err := requireCredential(credential); err != nil {
		return nil, err
	}
	if device == nil {
		return nil, &ValidationError{Field: "device", Reason: "is required"}
	}

	resp, err := c.Do(ctx, "/devices", RequestOptions{
		Method: http.MethodPost,
		Body:   device,
		Cookie: credential.Value,
	})
	if err != nil {
		return nil, err
	}

	var created entity.Device
	if err := resp.Decode(&created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateDevice replaces the device with id. The body always carries the id.
func (c *Client) UpdateDevice(ctx context.Context, id int64, device *entity.Device, credential *entity.SessionCredential) (*entity.Device, error) {
	if err := requireCredential(credential); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, &ValidationError{Field: "device id", Reason: "must be positive"}
	}
	if device == nil {
		return nil, &ValidationError{Field: "device", Reason: "is required"}
	}

	body := *device
	body.ID = id

	resp, err := c.Do(ctx, "/devices/"+strconv.FormatInt(id, 10), RequestOptions{
		Method: http.MethodPut,
		Body:   &body,
		Cookie: credential.Value,
	})
	if err != nil {
		return nil, err
	}

	var updated entity.Device
	if err := resp.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteDevice(ctx context.Context, id int64, credential *entity.SessionCredential) error {
	if err := requireCredential(credential); err != nil {
		return err
	}
	if id <= 0 {
		return &ValidationError{Field: "device id", Reason: "must be positive"}
	}

	_, err := c.Do(ctx, "/devices/"+strconv.FormatInt(id, 10), RequestOptions{
		Method: http.MethodDelete,
		Cookie: credential.Value,
	})

	return err
}

func requireCredential(credential *entity.SessionCredential) error {
	if credential.IsBlank() {
		return &ValidationError{Field: "session credential", Reason: "is required"}
	}

	return nil
}
