package repositories

import (
	"context"
	"errors"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.CartItem, error)
	FindByUserProductType(ctx context.Context, userID, productID uuid.UUID, subType db_models.SubscriptionType) (*db_models.CartItem, error)
	FindByIDForUser(ctx context.Context, itemID, userID uuid.UUID) (*db_models.CartItem, error)
	Insert(ctx context.Context, item *db_models.CartItem) error
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	Delete(ctx context.Context, itemID, userID uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (c *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.CartItem, error) {
	var items []db_models.CartItem
	err := c.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *cartRepository) FindByUserProductType(ctx context.Context, userID, productID uuid.UUID, subType db_models.SubscriptionType) (*db_models.CartItem, error) {
	var item db_models.CartItem
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND subscription_type = ?", userID, productID, subType).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (c *cartRepository) FindByIDForUser(ctx context.Context, itemID, userID uuid.UUID) (*db_models.CartItem, error) {
	var item db_models.CartItem
	err := c.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (c *cartRepository) Insert(ctx context.Context, item *db_models.CartItem) error {
	return c.db.WithContext(ctx).Create(item).Error
}

func (c *cartRepository) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	return c.db.WithContext(ctx).
		Model(&db_models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// Delete is scoped by user id; deleting an absent row is a no-op.
func (c *cartRepository) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	return c.db.WithContext(ctx).
		Delete(&db_models.CartItem{}, "id = ? AND user_id = ?", itemID, userID).Error
}

func (c *cartRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	return c.db.WithContext(ctx).
		Delete(&db_models.CartItem{}, "user_id = ?", userID).Error
}
