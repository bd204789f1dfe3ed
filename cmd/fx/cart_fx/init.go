package cart_fx

import (
	"aistore/internal/api/controllers"
	"aistore/internal/repositories"
	"aistore/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCartRepo, provideCartService, controllers.NewCartController)

func provideCartRepo(db *gorm.DB) repositories.CartRepository {
	return repositories.NewCartRepository(db)
}

func provideCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) services.CartServiceInterface {
	return services.NewCartService(cartRepo, productRepo)
}
