package repositories

import (
	"context"
	"errors"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]db_models.Category, error)
	ListAll(ctx context.Context) ([]db_models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	Insert(ctx context.Context, category *db_models.Category) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (c *categoryRepository) ListActive(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := c.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := c.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *categoryRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return c.db.WithContext(ctx).Model(&db_models.Category{}).Where("id = ?", id).Updates(patch).Error
}

func (c *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
}
