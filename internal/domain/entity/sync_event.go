package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncEvent reports a synchronization failure that needs operator attention.
type SyncEvent struct {
	RequestID      string    `json:"request_id,omitempty"`
	Type           string    `json:"type"`
	ProfileID      uuid.UUID `json:"profile_id,omitempty"`
	TrackingUserID int64     `json:"tracking_user_id,omitempty"`
	Email          string    `json:"email,omitempty"`
	Reason         string    `json:"reason"`
	OccurredAt     time.Time `json:"occurred_at"`
}
