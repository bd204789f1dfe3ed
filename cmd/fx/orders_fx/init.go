package orders_fx

import (
	"aistore/internal/api/controllers"
	"aistore/internal/repositories"
	"aistore/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideOrderRepo, provideSubscriptionRepo, provideOrderService,
	controllers.NewOrdersController)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideOrderService(orderRepo repositories.OrderRepository, subRepo repositories.SubscriptionRepository) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, subRepo)
}
