package errors

import "trackio/internal/errors"

// Outcome is the coarse result reported to a caller after a tracking synchronization failure.
type Outcome string

const (
	OutcomeNone               Outcome = ""
	OutcomeCredentialsInvalid Outcome = "credentials_invalid"
	OutcomeNotSynchronized    Outcome = "not_synchronized"
	OutcomeUnknown            Outcome = "unknown"
)

// TrackingOutcome collapses err into one of the three caller-facing outcomes.
func TrackingOutcome(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeNone
	case errors.Is(err, ErrTrackingCredentialsInvalid),
		errors.Is(err, ErrInvalidCredentials):
		return OutcomeCredentialsInvalid
	case errors.Is(err, ErrTrackingNotSynchronized),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrTrackingTokenUnavailable),
		errors.Is(err, ErrTrackingTokenExpired):
		return OutcomeNotSynchronized
	default:
		return OutcomeUnknown
	}
}
