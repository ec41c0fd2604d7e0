// Package constants holds identifiers shared across layers.
package constants

// EnvLocal is the environment name used for local development.
const EnvLocal = "local"

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Sync event types published for operator visibility
const (
	SyncEventMappingPersistFailed = "tracking.mapping_persist_failed"
	SyncEventIdentityOrphaned     = "tracking.identity_orphaned"
	SyncEventRefreshFailed        = "tracking.session_refresh_failed"
)

// TrackingSessionCookie is the cookie name the tracking service uses for its session id.
const TrackingSessionCookie = "JSESSIONID"
