package checkout_fx

import (
	"aistore/internal/api/controllers"
	"aistore/internal/repositories"
	"aistore/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAttemptRepo, provideCheckoutService, controllers.NewCheckoutController)

func provideAttemptRepo(db *gorm.DB) repositories.CheckoutAttemptRepository {
	return repositories.NewCheckoutAttemptRepository(db)
}

func provideCheckoutService(
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	subRepo repositories.SubscriptionRepository,
	attemptRepo repositories.CheckoutAttemptRepository,
) services.CheckoutServiceInterface {
	return services.NewCheckoutService(cartRepo, orderRepo, subRepo, attemptRepo)
}
