package repositories

import (
	"context"

	"aistore/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	InsertBatch(ctx context.Context, subs []db_models.Subscription) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) InsertBatch(ctx context.Context, subs []db_models.Subscription) error {
	if len(subs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&subs).Error
}

func (s *subscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *subscriptionRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND status = ?", userID, db_models.SubStatusActive).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
