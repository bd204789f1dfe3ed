package repositories

import (
	"context"
	"errors"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutAttemptRepository interface {
	Insert(ctx context.Context, attempt *db_models.CheckoutAttempt) error
	FindLatestByUserKey(ctx context.Context, userID uuid.UUID, key string) (*db_models.CheckoutAttempt, error)
	MarkCompleted(ctx context.Context, attemptID, orderID uuid.UUID) error
	MarkFailed(ctx context.Context, attemptID uuid.UUID, failedStep string, orderID *uuid.UUID) error
}

type checkoutAttemptRepository struct {
	db *gorm.DB
}

func NewCheckoutAttemptRepository(db *gorm.DB) CheckoutAttemptRepository {
	return &checkoutAttemptRepository{db: db}
}

func (r *checkoutAttemptRepository) Insert(ctx context.Context, attempt *db_models.CheckoutAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *checkoutAttemptRepository) FindLatestByUserKey(ctx context.Context, userID uuid.UUID, key string) (*db_models.CheckoutAttempt, error) {
	var attempt db_models.CheckoutAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		Order("created_at DESC").
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *checkoutAttemptRepository) MarkCompleted(ctx context.Context, attemptID, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.CheckoutAttempt{}).
		Where("id = ?", attemptID).
		Updates(map[string]interface{}{
			"status":   db_models.AttemptStatusCompleted,
			"order_id": orderID,
		}).Error
}

func (r *checkoutAttemptRepository) MarkFailed(ctx context.Context, attemptID uuid.UUID, failedStep string, orderID *uuid.UUID) error {
	patch := map[string]interface{}{
		"status":      db_models.AttemptStatusFailed,
		"failed_step": failedStep,
	}
	if orderID != nil {
		patch["order_id"] = *orderID
	}
	return r.db.WithContext(ctx).
		Model(&db_models.CheckoutAttempt{}).
		Where("id = ?", attemptID).
		Updates(patch).Error
}
