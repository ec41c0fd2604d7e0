package entity

import "time"

// Device statuses reported by the tracking service. Any other value is treated as unknown.
const (
	DeviceStatusOnline  = "online"
	DeviceStatusOffline = "offline"
	DeviceStatusUnknown = "unknown"
)

// Device is a tracked piece of hardware on the tracking service. It is never persisted locally.
// UniqueID identifies the physical hardware (typically an IMEI) and must not change after creation.
type Device struct {
	ID         int64          `json:"id,omitempty"`
	Name       string         `json:"name"`
	UniqueID   string         `json:"uniqueId"`
	Status     string         `json:"status,omitempty"`
	Disabled   bool           `json:"disabled,omitempty"`
	LastUpdate *time.Time     `json:"lastUpdate,omitempty"`
	PositionID int64          `json:"positionId,omitempty"`
	GroupID    int64          `json:"groupId,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Model      string         `json:"model,omitempty"`
	Contact    string         `json:"contact,omitempty"`
	Category   string         `json:"category,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// NormalizedStatus folds unexpected status values into DeviceStatusUnknown.
func (d *Device) NormalizedStatus() string {
	switch d.Status {
	case DeviceStatusOnline, DeviceStatusOffline:
		return d.Status
	default:
		return DeviceStatusUnknown
	}
}
