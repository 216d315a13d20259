// Package routes wires the HTTP surface. Paths and casing match the routes
// the storefront client was built against.
package routes

import (
	"time"

	"gorm.io/gorm"

	"eshop-back/app/controllers"
	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/app/services"
	"eshop-back/pkg/metrics"
	"eshop-back/pkg/middleware"
	"eshop-back/pkg/rbac"
	"eshop-back/pkg/reqid"
	"eshop-back/pkg/router"
)

// Register mounts every route on r, building the controller stack on top
// of db.
func Register(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	news := repositories.NewNewsRepository(db)
	orders := repositories.NewOrderRepository(db)
	orderItems := repositories.NewOrderItemRepository(db)

	authService := services.NewAuthService(users)
	orderService := services.NewOrderService(orders, products, users)

	userController := controllers.NewUserController(authService, users)
	productController := controllers.NewProductController(products)
	newsController := controllers.NewNewsController(news)
	orderController := controllers.NewOrderController(orderService)
	orderItemController := controllers.NewOrderItemController(orderItems)

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api")

	// Identity.
	api.Post("/User/register", "user.register", userController.Register)
	api.Post("/User/login", "user.login", userController.Login)

	// Public catalogue.
	api.Get("/Products", "products.index", productController.Index)
	api.Get("/Products/{id}", "products.show", productController.Show)
	api.Get("/NewsItems", "news.index", newsController.Index)
	api.Get("/NewsItems/{id}", "news.show", newsController.Show)

	// Any authenticated user.
	authed := api.Group("", middleware.Auth)
	authed.Get("/Order", "orders.index", orderController.Index)
	authed.Post("/Order", "orders.create", orderController.Create)

	// Admin only.
	admin := api.Group("", middleware.Auth, rbac.HasRole(models.RoleAdmin))
	admin.Get("/User", "users.index", userController.Index)
	admin.Delete("/User/{id}", "users.delete", userController.Delete)

	admin.Post("/Products", "products.create", productController.Create)
	admin.Put("/Products/{id}", "products.update", productController.Update)
	admin.Delete("/Products/{id}", "products.delete", productController.Delete)

	admin.Post("/NewsItems", "news.create", newsController.Create)
	admin.Put("/NewsItems/{id}", "news.update", newsController.Update)
	admin.Delete("/NewsItems/{id}", "news.delete", newsController.Delete)

	admin.Put("/Order/{id}", "orders.update", orderController.Update)
	admin.Delete("/Order/{id}", "orders.delete", orderController.Delete)

	admin.Get("/OrderItems", "order_items.index", orderItemController.Index)
	admin.Get("/OrderItems/{id}", "order_items.show", orderItemController.Show)
	admin.Post("/OrderItems", "order_items.create", orderItemController.Create)
	admin.Put("/OrderItems/{id}", "order_items.update", orderItemController.Update)
	admin.Delete("/OrderItems/{id}", "order_items.delete", orderItemController.Delete)
}
