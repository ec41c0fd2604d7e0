package entity

// TrackingUser is a user account on the tracking service.
type TrackingUser struct {
	ID            int64          `json:"id,omitempty"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Password      string         `json:"password,omitempty"`
	Administrator bool           `json:"administrator"`
	Readonly      bool           `json:"readonly"`
	Disabled      bool           `json:"disabled,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}

// Attribute keys used for tracking user names.
const (
	TrackingAttrFirstName = "first_name"
	TrackingAttrLastName  = "last_name"
)
