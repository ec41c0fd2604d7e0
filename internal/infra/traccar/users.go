package traccar

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"

	"github.com/pkg/errors"
)

// CreateUser creates a tracking user authenticated as administrator.
func (c *Client) CreateUser(ctx context.Context, user *entity.TrackingUser, adminEmail, adminPassword string) (*entity.TrackingUser, error) {
	if err := requireAdmin(adminEmail, adminPassword); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &ValidationError{Field: "user", Reason: "is required"}
	}

	resp, err := c.Do(ctx, "/users", RequestOptions{
		Method:   http.MethodPost,
		Body:     user,
		AuthType: AuthBasic,
		Email:    adminEmail,
		Password: adminPassword,
	})
	if err != nil {
		return nil, err
	}

	var created entity.TrackingUser
	if err := resp.Decode(&created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateUser replaces the tracking user with id. The body always carries the id.
func (c *Client) UpdateUser(ctx context.Context, id int64, user *entity.TrackingUser, email, password string) (*entity.TrackingUser, error) {
	if id <= 0 {
		return nil, &ValidationError{Field: "user id", Reason: "must be positive"}
	}
	if user == nil {
		return nil, &ValidationError{Field: "user", Reason: "is required"}
	}

	body := *user
	body.ID = id

	resp, err := c.Do(ctx, "/users/"+strconv.FormatInt(id, 10), RequestOptions{
		Method:   http.MethodPut,
		Body:     &body,
		AuthType: AuthBasic,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var updated entity.TrackingUser
	if err := resp.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteUser removes the tracking user with id, authenticated as administrator.
func (c *Client) DeleteUser(ctx context.Context, id int64, adminEmail, adminPassword string) error {
	if err := requireAdmin(adminEmail, adminPassword); err != nil {
		return err
	}
	if id <= 0 {
		return &ValidationError{Field: "user id", Reason: "must be positive"}
	}

	_, err := c.Do(ctx, "/users/"+strconv.FormatInt(id, 10), RequestOptions{
		Method:   http.MethodDelete,
		AuthType: AuthBasic,
		Email:    adminEmail,
		Password: adminPassword,
	})

	return err
}

// ResetPassword asks the tracking service to mail a reset link to email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}

	_, err := c.Do(ctx, "/password/reset", RequestOptions{
		Method:      http.MethodPost,
		Body:        Form{{Key: "email", Value: email}},
		ContentType: ContentTypeForm,
	})

	return err
}

func requireAdmin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.Wrap(service.ErrTrackingConfiguration, "administrator credentials are not configured")
	}

	return nil
}
