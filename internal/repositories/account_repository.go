package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"newlife/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByProviderSubject(ctx context.Context, provider, subject string) (*db_models.Account, error)
	Update(ctx context.Context, account *db_models.Account) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return a.first(ctx, "id = ?", id)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.first(ctx, "email = ?", email)
}

func (a *accountRepository) FindByProviderSubject(ctx context.Context, provider, subject string) (*db_models.Account, error) {
	return a.first(ctx, "provider = ? AND provider_subject = ?", provider, subject)
}

func (a *accountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Save(account).Error
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (a *accountRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Where(query, args...).First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}
