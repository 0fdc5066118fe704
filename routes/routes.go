package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, itemRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, itemRepo)
	restSvc := services.NewRestaurantService(db, restRepo, itemRepo, reviewSvc)
	customerSvc := services.NewCustomerService(db, userRepo, favRepo, restRepo)
	reportSvc := services.NewReportService(db, reportRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	catalogCtrl := controllers.NewCatalogController(restSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, orderSvc, reportSvc)
	adminCtrl := controllers.NewAdminController(restSvc)

	secret := cfg.JWTSecret

	// Auth
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup/customer", authCtrl.SignupCustomer)
		auth.POST("/signup/restaurant", authCtrl.SignupRestaurant)
		auth.POST("/login", authCtrl.Login)
		auth.PUT("/change-password", middlewares.AuthMiddleware(secret), authCtrl.ChangePassword)
	}

	// Customer surface: public catalog reads plus customer-only aggregates
	customer := r.Group("/api/customer")
	{
		customer.GET("/restaurants/:restaurant_id/items", catalogCtrl.Items)
		customer.GET("/restaurants/:restaurant_id/items/:item_id", catalogCtrl.ItemDetail)
		customer.GET("/items/:item_id/reviews/", reviewCtrl.ListForItem)
	}

	customerOnly := customer.Group("", middlewares.AuthMiddleware(secret, entity.RoleCustomer))
	{
		customerOnly.GET("/carts", cartCtrl.List)
		customerOnly.POST("/carts", cartCtrl.Add)
		customerOnly.GET("/carts/:id", cartCtrl.Detail)
		customerOnly.PUT("/carts/:id", cartCtrl.UpdateItem)
		customerOnly.DELETE("/carts/:id", cartCtrl.Delete)
		customerOnly.DELETE("/carts/:id/items/:cart_item_id", cartCtrl.DeleteItem)

		customerOnly.GET("/orders", orderCtrl.List)
		customerOnly.POST("/orders", orderCtrl.Create)
		customerOnly.GET("/orders/:id", orderCtrl.Detail)

		customerOnly.POST("/reviews/create", reviewCtrl.Create)

		customerOnly.GET("/profile", customerCtrl.Profile)
		customerOnly.PUT("/profile", customerCtrl.UpdateProfile)
		customerOnly.PATCH("/profile", customerCtrl.UpdateProfile)

		customerOnly.GET("/favorites", customerCtrl.Favorites)
		customerOnly.POST("/favorites", customerCtrl.AddFavorite)
		customerOnly.DELETE("/favorites", customerCtrl.RemoveFavorite)
	}

	// Restaurant surface: public profiles plus manager-only management
	restaurant := r.Group("/api/restaurant")
	{
		restaurant.GET("/profiles", restCtrl.List)
	}

	managerOnly := restaurant.Group("", middlewares.AuthMiddleware(secret, entity.RoleRestaurantManager))
	{
		managerOnly.GET("/profiles/me", restCtrl.Me)
		managerOnly.PUT("/profiles/me", restCtrl.UpdateMe)

		managerOnly.GET("/items", restCtrl.Items)
		managerOnly.POST("/items", restCtrl.CreateItem)
		managerOnly.GET("/items/:id", restCtrl.Item)
		managerOnly.PUT("/items/:id", restCtrl.UpdateItem)
		managerOnly.DELETE("/items/:id", restCtrl.DeleteItem)

		managerOnly.GET("/orders", restCtrl.OrderList)
		managerOnly.PATCH("/orders/:id/status", restCtrl.UpdateOrderState)

		managerOnly.GET("/sales-reports", restCtrl.SalesReport)
	}

	// Public detail registered after /profiles/me so gin resolves both.
	restaurant.GET("/profiles/:id", restCtrl.Detail)

	// Admin: restaurant approval
	admin := r.Group("/api/admin", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.PATCH("/restaurants/:id/approve", adminCtrl.Approve)
		admin.PATCH("/restaurants/:id/reject", adminCtrl.Reject)
	}
}
