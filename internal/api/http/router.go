package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Products       *handlers.ProductsHandler
	Cart           *handlers.CartHandler
	Orders         *handlers.OrdersHandler
	AdminOrders    *handlers.AdminOrdersHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Users.Register)
	app.Post("/auth/login", cfg.Users.Login)

	session := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireSession())
	session.Get("/users/me", cfg.Users.Me)
	session.Get("/products", cfg.Products.List)

	session.Get("/cart", cfg.Cart.View)
	session.Post("/cart/items", cfg.Cart.AddItem)
	session.Delete("/cart/items/:product_id", cfg.Cart.RemoveItem)
	session.Post("/checkout", cfg.Cart.Checkout)
	session.Post("/payments", cfg.Payments.Pay)

	session.Post("/orders", cfg.Orders.Place)
	session.Get("/orders", cfg.Orders.ListMine)

	admin := session.Group("/admin", auth.RequireRole(domain.RoleAdmin))
	admin.Get("/orders", cfg.AdminOrders.List)
	admin.Post("/orders/:id/deliver", cfg.AdminOrders.MarkDelivered)
	admin.Delete("/orders/:id", cfg.AdminOrders.Delete)
	admin.Get("/stats", cfg.AdminOrders.Stats)
	admin.Get("/revenue", cfg.AdminOrders.Revenue)
}
