package dashboard_fx

import (
	"aistore/internal/api/controllers"
	"aistore/internal/repositories"
	"aistore/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, controllers.NewAdminController)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo)
}
