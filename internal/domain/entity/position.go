package entity

import "time"

// Position is a single location fix reported by a device. Speed is in knots.
type Position struct {
	ID         int64          `json:"id,omitempty"`
	DeviceID   int64          `json:"deviceId"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Altitude   float64        `json:"altitude,omitempty"`
	Speed      *float64       `json:"speed,omitempty"`
	Course     float64        `json:"course,omitempty"`
	Address    *string        `json:"address,omitempty"`
	Valid      bool           `json:"valid,omitempty"`
	FixTime    *time.Time     `json:"fixTime,omitempty"`
	DeviceTime *time.Time     `json:"deviceTime,omitempty"`
	ServerTime *time.Time     `json:"serverTime,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Timestamp returns the best available time of the fix.
func (p *Position) Timestamp() *time.Time {
	switch {
	case p.FixTime != nil:
		return p.FixTime
	case p.DeviceTime != nil:
		return p.DeviceTime
	default:
		return p.ServerTime
	}
}

// PositionQuery filters a positions lookup. All fields are optional.
type PositionQuery struct {
	DeviceID *int64
	From     *time.Time
	To       *time.Time
}
