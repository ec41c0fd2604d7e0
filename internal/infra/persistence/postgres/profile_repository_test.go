package postgres

import (
	"context"
	"testing"

	"trackio/internal/domain/entity"
	"trackio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	userID := uuid.New()

	profile := &entity.Profile{UserID: userID, FirstName: "Ana", LastName: "Ruiz"}
	require.NoError(t, repo.CreateProfile(ctx, profile))
	assert.NotEqual(t, uuid.Nil, profile.ID)

	got, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, "Ana Ruiz", got.FullName())

	err = repo.CreateProfile(ctx, &entity.Profile{UserID: userID})
	assert.ErrorIs(t, err, repository.ErrDuplicateProfile)

	_, err = repo.FindByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ProfileRepo().CreateProfile(ctx, &entity.Profile{UserID: userID}); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewProfileRepository(db).FindByUserID(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profile := &entity.Profile{UserID: userID}
		if err := factory.ProfileRepo().CreateProfile(ctx, profile); err != nil {
			return err
		}
		_, err := factory.IdentityMappingRepo().Upsert(ctx, &entity.IdentityMapping{ProfileID: profile.ID, IsSynced: true})

		return err
	})
	require.NoError(t, err)

	_, err = NewProfileRepository(db).FindByUserID(ctx, userID)
	assert.NoError(t, err)
}
