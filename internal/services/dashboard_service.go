package services

import (
	"context"
	"time"

	"aistore/internal/models/db_models"
	"aistore/internal/models/response_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*response_models.AdminStats, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetStats aggregates the back-office overview. Revenue counts only
// completed orders; monthly revenue is scoped to the current calendar
// month.
func (s *DashboardService) GetStats(ctx context.Context) (*response_models.AdminStats, error) {
	stats := &response_models.AdminStats{}

	var err error
	if stats.TotalProducts, err = s.dashboardRepo.CountProducts(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalOrders, err = s.dashboardRepo.CountOrders(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalUsers, err = s.dashboardRepo.CountUsers(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalCategories, err = s.dashboardRepo.CountCategories(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalRevenue, err = s.dashboardRepo.CompletedRevenue(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if stats.MonthlyRevenue, err = s.dashboardRepo.CompletedRevenueSince(ctx, monthStart); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if stats.PendingOrders, err = s.dashboardRepo.CountOrdersByStatus(ctx, db_models.OrderStatusPending); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return stats, nil
}
