package repositories

import (
	"context"
	"errors"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Insert(ctx context.Context, profile *db_models.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	ListAll(ctx context.Context) ([]db_models.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return a.db.WithContext(ctx).Create(profile).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := a.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := a.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (a *accountRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return a.db.WithContext(ctx).Model(&db_models.Profile{}).Where("id = ?", id).Updates(patch).Error
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	err := a.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (a *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).Delete(&db_models.Profile{}, "id = ?", id).Error
}
