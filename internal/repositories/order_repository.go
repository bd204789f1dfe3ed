package repositories

import (
	"context"
	"errors"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *db_models.Order) error
	InsertItems(ctx context.Context, items []db_models.OrderItem) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error)
	ListAll(ctx context.Context) ([]db_models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (o *orderRepository) Insert(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Create(order).Error
}

func (o *orderRepository) InsertItems(ctx context.Context, items []db_models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return o.db.WithContext(ctx).Create(&items).Error
}

func (o *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) error {
	return o.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (o *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (o *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *orderRepository) ListAll(ctx context.Context) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
