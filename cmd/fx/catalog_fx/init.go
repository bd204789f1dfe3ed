package catalog_fx

import (
	"aistore/internal/api/controllers"
	"aistore/internal/repositories"
	"aistore/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideProductRepo, provideCategoryRepo, provideCatalogService,
	controllers.NewProductsController, controllers.NewCategoriesController)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(productRepo, categoryRepo)
}
