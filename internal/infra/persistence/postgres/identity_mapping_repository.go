package postgres

import (
	"context"
	"time"

	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/repository"
	"trackio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityMappingRepository implements repository.IdentityMappingRepository using GORM.
type identityMappingRepository struct {
	db *gorm.DB
}

// NewIdentityMappingRepository is the constructor for identityMappingRepository.
func NewIdentityMappingRepository(db *gorm.DB) repository.IdentityMappingRepository {
	return &identityMappingRepository{db: db}
}

// FindByProfileID retrieves the mapping owned by profileID.
func (repo *identityMappingRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.IdentityMapping, error) {
	var mappingM model.IdentityMappingModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&mappingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityMappingNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity mapping by profile id")
	}

	return toIdentityMappingDomain(&mappingM), nil
}

// Upsert writes the mapping in a single INSERT ... ON CONFLICT (profile_id) DO UPDATE.
// Concurrent writers for the same profile therefore never produce two rows.
func (repo *identityMappingRepository) Upsert(ctx context.Context, mapping *entity.IdentityMapping) (*entity.IdentityMapping, error) {
	mappingM := fromIdentityMappingDomain(mapping)
	if mappingM.ID == uuid.Nil {
		mappingM.ID = uuid.New()
	}
	now := time.Now().UTC()
	if mappingM.LastSyncAt.IsZero() {
		mappingM.LastSyncAt = now
	}

	updates := []string{"session_token", "token_expires_at", "is_synced", "last_sync_at", "sync_error", "updated_at"}
	if mapping.TrackingUserID != nil {
		updates = append(updates, "traccar_user_id")
	}
	if mapping.TrackingUsername != "" {
		updates = append(updates, "traccar_username")
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(mappingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("identity mapping references a missing profile")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert identity mapping")
	}

	return repo.FindByProfileID(ctx, mapping.ProfileID)
}

// RecordSyncError stores message on the profile's mapping and marks it unsynchronized.
func (repo *identityMappingRepository) RecordSyncError(ctx context.Context, profileID uuid.UUID, message string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityMappingModel{}).
		Where("profile_id = ?", profileID).
		Updates(map[string]any{
			"sync_error":   message,
			"is_synced":    false,
			"last_sync_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record sync error")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityMappingNotFound
	}

	return nil
}

func toIdentityMappingDomain(m *model.IdentityMappingModel) *entity.IdentityMapping {
	return &entity.IdentityMapping{
		ID:               m.ID,
		ProfileID:        m.ProfileID,
		TrackingUserID:   m.TrackingUserID,
		TrackingUsername: m.TrackingUsername,
		SessionToken:     m.SessionToken,
		TokenExpiresAt:   m.TokenExpiresAt,
		IsSynced:         m.IsSynced,
		LastSyncAt:       m.LastSyncAt,
		SyncError:        m.SyncError,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromIdentityMappingDomain(m *entity.IdentityMapping) *model.IdentityMappingModel {
	return &model.IdentityMappingModel{
		ID:               m.ID,
		ProfileID:        m.ProfileID,
		TrackingUserID:   m.TrackingUserID,
		TrackingUsername: m.TrackingUsername,
		SessionToken:     m.SessionToken,
		TokenExpiresAt:   m.TokenExpiresAt,
		IsSynced:         m.IsSynced,
		LastSyncAt:       m.LastSyncAt,
		SyncError:        m.SyncError,
	}
}
