package services

import (
	"context"

	"aistore/internal/models/db_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"

	"github.com/google/uuid"
)

type OrderServiceInterface interface {
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*db_models.Order, error)
	ListMySubscriptions(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)

	// Admin operations. Cancellation and refunds are admin-only
	// transitions; the checkout workflow never performs them.
	ListAllOrders(ctx context.Context) ([]db_models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) error
}

type OrderService struct {
	orderRepo repositories.OrderRepository
	subRepo   repositories.SubscriptionRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, subRepo repositories.SubscriptionRepository) OrderServiceInterface {
	return &OrderService{
		orderRepo: orderRepo,
		subRepo:   subRepo,
	}
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*db_models.Order, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil || order.UserID != userID {
		return nil, utils.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListMySubscriptions(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}
	subs, err := s.subRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]db_models.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return orders, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) error {
	switch status {
	case db_models.OrderStatusPending, db_models.OrderStatusProcessing,
		db_models.OrderStatusCompleted, db_models.OrderStatusCancelled,
		db_models.OrderStatusRefunded:
	default:
		return utils.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if order == nil {
		return utils.ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
