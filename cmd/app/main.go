package main

import (
	"context"
	"log"

	"aistore/cmd/fx/account_fx"
	"aistore/cmd/fx/cart_fx"
	"aistore/cmd/fx/catalog_fx"
	"aistore/cmd/fx/checkout_fx"
	"aistore/cmd/fx/dashboard_fx"
	"aistore/cmd/fx/db_fx"
	"aistore/cmd/fx/orders_fx"
	"aistore/internal/api/controllers"
	"aistore/pkg/config"
	"aistore/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		cart_fx.Module,
		checkout_fx.Module,
		orders_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	accountController *controllers.AccountController,
	productsController *controllers.ProductsController,
	categoriesController *controllers.CategoriesController,
	cartController *controllers.CartController,
	checkoutController *controllers.CheckoutController,
	ordersController *controllers.OrdersController,
	adminController *controllers.AdminController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		productsController,
		categoriesController,
		cartController,
		checkoutController,
		ordersController,
		adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	productsController *controllers.ProductsController,
	categoriesController *controllers.CategoriesController,
	cartController *controllers.CartController,
	checkoutController *controllers.CheckoutController,
	ordersController *controllers.OrdersController,
	adminController *controllers.AdminController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.GetProfile)
	accounts.PUT("/me", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)

	r.GET("/products", productsController.ListProducts)
	r.GET("/products/:id", productsController.GetProduct)
	r.GET("/categories", categoriesController.ListCategories)

	cart := r.Group("/cart", middleware.JWTAuthMiddleware())
	cart.GET("", cartController.GetCart)
	cart.DELETE("", cartController.ClearCart)
	cart.POST("/items", cartController.AddItem)
	cart.PUT("/items/:id", cartController.UpdateQuantity)
	cart.DELETE("/items/:id", cartController.RemoveItem)

	r.POST("/checkout", middleware.JWTAuthMiddleware(), checkoutController.Checkout)

	r.GET("/orders", middleware.JWTAuthMiddleware(), ordersController.ListMyOrders)
	r.GET("/orders/:id", middleware.JWTAuthMiddleware(), ordersController.GetOrder)
	r.GET("/subscriptions", middleware.JWTAuthMiddleware(), ordersController.ListMySubscriptions)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/stats", adminController.GetStats)
	admin.GET("/products", adminController.ListAllProducts)
	admin.POST("/products", adminController.CreateProduct)
	admin.PUT("/products/:id", adminController.UpdateProduct)
	admin.DELETE("/products/:id", adminController.DeleteProduct)
	admin.GET("/categories", adminController.ListAllCategories)
	admin.POST("/categories", adminController.CreateCategory)
	admin.PUT("/categories/:id", adminController.UpdateCategory)
	admin.DELETE("/categories/:id", adminController.DeleteCategory)
	admin.GET("/orders", adminController.ListAllOrders)
	admin.PUT("/orders/:id/status", adminController.UpdateOrderStatus)
	admin.GET("/users", adminController.ListUsers)
	admin.PUT("/users/:id", adminController.UpdateUser)
	admin.DELETE("/users/:id", adminController.DeleteUser)
}
