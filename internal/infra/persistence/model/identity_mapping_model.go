package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityMappingModel mirrors the 'traccar_users' table. One row per profile.
type IdentityMappingModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProfileID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_traccar_users_profile_id"`
	TrackingUserID   *int64     `gorm:"column:traccar_user_id"`
	TrackingUsername string     `gorm:"column:traccar_username;type:varchar(255)"`
	SessionToken     *string    `gorm:"type:text"`
	TokenExpiresAt   *time.Time `gorm:"index"`
	IsSynced         bool       `gorm:"not null"`
	LastSyncAt       time.Time  `gorm:"not null"`
	SyncError        *string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityMappingModel) TableName() string {
	return "traccar_users"
}
