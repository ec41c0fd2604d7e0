package handler

import (
	deliverycontext "trackio/internal/delivery/context"
	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// principal returns the account and profile stored by the auth middleware.
func principal(c echo.Context) (*entity.Account, *entity.Profile, error) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return nil, nil, domainerrors.ErrUnauthorized
	}

	profile, ok := deliverycontext.GetProfile(c)
	if !ok {
		return nil, nil, domainerrors.ErrProfileNotFound
	}

	return account, profile, nil
}

// bindAndValidate binds the request body into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
