// Package model holds the GORM persistence models. IDs are assigned by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table of the built-in account provider.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(200)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AccountSessionModel mirrors the 'account_sessions' table. Deleting a row revokes its tokens.
type AccountSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountSessionModel) TableName() string {
	return "account_sessions"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&AccountModel{},
		&AccountSessionModel{},
		&ProfileModel{},
		&IdentityMappingModel{},
	}
}
