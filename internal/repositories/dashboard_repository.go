package repositories

import (
	"context"
	"time"

	"aistore/internal/models/db_models"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context, status db_models.OrderStatus) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
	CompletedRevenueSince(ctx context.Context, since time.Time) (float64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (d *dashboardRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&db_models.Product{}).Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&db_models.Order{}).Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&db_models.Profile{}).Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&db_models.Category{}).Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CountOrdersByStatus(ctx context.Context, status db_models.OrderStatus) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := d.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("status = ?", db_models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (d *dashboardRepository) CompletedRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := d.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("status = ? AND created_at >= ?", db_models.OrderStatusCompleted, since.Unix()).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}
