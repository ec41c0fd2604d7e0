package postgres

import (
	"context"
	"strings"
	"time"

	"trackio/internal/domain/entity"
	domainerrors "trackio/internal/domain/errors"
	"trackio/internal/domain/repository"
	"trackio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount persists a new account. Emails are stored lower-cased and trimmed.
func (repo *accountRepository) CreateAccount(ctx context.Context, record *repository.AccountRecord) error {
	accountM := &model.AccountModel{
		ID:           record.Account.ID,
		Email:        normalizeEmail(record.Account.Email),
		Name:         record.Account.Name,
		PasswordHash: record.PasswordHash,
	}
	if accountM.ID == uuid.Nil {
		accountM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	record.Account.ID = accountM.ID
	record.Account.Email = accountM.Email
	record.Account.CreatedAt = accountM.CreatedAt
	record.Account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByEmail retrieves an account by email, case-insensitively.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*repository.AccountRecord, error) {
	return repo.findOne(ctx, "email = ?", normalizeEmail(email))
}

// FindByID retrieves an account by id.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*repository.AccountRecord, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// UpdateEmail changes the login email of an account.
func (repo *accountRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"email": normalizeEmail(email), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account email")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"password_hash": hash, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes an account. A missing account gives repository.ErrAccountNotFound.
func (repo *accountRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*repository.AccountRecord, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return &repository.AccountRecord{
		Account: entity.Account{
			ID:        accountM.ID,
			Email:     accountM.Email,
			Name:      accountM.Name,
			CreatedAt: accountM.CreatedAt,
			UpdatedAt: accountM.UpdatedAt,
		},
		PasswordHash: accountM.PasswordHash,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// accountSessionRepository implements repository.AccountSessionRepository using GORM.
type accountSessionRepository struct {
	db *gorm.DB
}

// NewAccountSessionRepository is the constructor for accountSessionRepository.
func NewAccountSessionRepository(db *gorm.DB) repository.AccountSessionRepository {
	return &accountSessionRepository{db: db}
}

// CreateSession records a new session row.
func (repo *accountSessionRepository) CreateSession(ctx context.Context, id, accountID uuid.UUID, expiresAt time.Time) error {
	sessionM := &model.AccountSessionModel{ID: id, AccountID: accountID, ExpiresAt: expiresAt}
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account session")
	}

	return nil
}

// FindSession returns the owner of an unexpired session.
func (repo *accountSessionRepository) FindSession(ctx context.Context, id uuid.UUID, now time.Time) (uuid.UUID, error) {
	var sessionM model.AccountSessionModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, now).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrAccountSessionNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find account session")
	}

	return sessionM.AccountID, nil
}

// DeleteSession revokes a single session. Deleting a missing session is not an error.
func (repo *accountSessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountSessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account session")
	}

	return nil
}

// DeleteByAccount revokes every session of accountID.
func (repo *accountSessionRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&model.AccountSessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account sessions")
	}

	return nil
}
