package repositories

import (
	"context"
	"errors"
	"strings"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows storefront listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID *uuid.UUID
	Search     string
	Sort       string // "price_asc", "price_desc", "" (newest first)
	ActiveOnly bool
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]db_models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	Insert(ctx context.Context, product *db_models.Product) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) List(ctx context.Context, filter ProductFilter) ([]db_models.Product, error) {
	query := p.db.WithContext(ctx).Preload("Category")

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + s + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var products []db_models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Insert(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return p.db.WithContext(ctx).Model(&db_models.Product{}).Where("id = ?", id).Updates(patch).Error
}

func (p *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return p.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
}
