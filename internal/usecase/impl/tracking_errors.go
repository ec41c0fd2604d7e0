package impl

import (
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/service"
	"trackio/internal/errors"
)

// remoteDetails returns the tracking service's own message for err, falling back to err's text.
func remoteDetails(err error) string {
	if trackingErr, ok := errors.AsType[service.TrackingError](err); ok && trackingErr.RemoteMessage() != "" {
		return trackingErr.RemoteMessage()
	}

	return err.Error()
}

// mapSessionError maps a failed login against the tracking service.
func mapSessionError(err error) error {
	switch {
	case errors.Is(err, service.ErrTrackingAuthentication):
		return domainerrors.ErrTrackingCredentialsInvalid.WrapMessage("tracking login rejected")
	case errors.Is(err, service.ErrTrackingTransient):
		return domainerrors.ErrTrackingUnavailable.WrapMessage("tracking login failed")
	default:
		return domainerrors.ErrTrackingUnknown.WithDetails(err.Error())
	}
}

// mapRegistrationError maps a failed tracking user creation made with admin credentials.
func mapRegistrationError(err error) error {
	switch {
	case errors.Is(err, service.ErrTrackingConfiguration):
		return domainerrors.ErrTrackingConfiguration
	case errors.Is(err, service.ErrTrackingAuthentication):
		return domainerrors.ErrTrackingAdminRejected
	case errors.Is(err, service.ErrTrackingValidation):
		return domainerrors.ErrTrackingUserRejected.WithDetails(remoteDetails(err))
	default:
		return mapOperationError(err)
	}
}

// mapOperationError maps a failed call made with a stored session credential.
func mapOperationError(err error) error {
	switch {
	case errors.Is(err, service.ErrTrackingAuthentication):
		return domainerrors.ErrTrackingSessionExpired
	case errors.Is(err, service.ErrTrackingForbidden):
		return domainerrors.ErrTrackingForbidden
	case errors.Is(err, service.ErrTrackingNotFound):
		return domainerrors.ErrTrackingResourceNotFound
	case errors.Is(err, service.ErrTrackingValidation):
		return domainerrors.ErrTrackingRequestRejected.WithDetails(remoteDetails(err))
	case errors.Is(err, service.ErrTrackingTransient):
		return domainerrors.ErrTrackingUnavailable
	case errors.Is(err, service.ErrTrackingConfiguration):
		return domainerrors.ErrTrackingConfiguration
	default:
		return domainerrors.ErrTrackingUnknown.WithDetails(err.Error())
	}
}
