package routes

import (
	"github.com/dukerupert/kirana/internal/handler"
	"github.com/dukerupert/kirana/internal/middleware"
	"github.com/dukerupert/kirana/internal/router"
)

// ExportRoute is the catalog spreadsheet export. It runs under
// middleware.ExportTimeout rather than the default deadline.
const ExportRoute = "GET " + exportPath

const exportPath = "/api/products/shop/{shopId}/export"

// RegisterAPIRoutes registers every /api route. Catalog reads are public;
// everything that names the caller goes through RequireAuth.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	authed := r.Group(middleware.RequireAuth(deps.Auth))

	// Service descriptor and health
	r.Get("/api", deps.HealthHandler.Index)
	r.Get("/api/health", deps.HealthHandler.Health)

	// Auth
	authRoutes := r
	if deps.AuthLimiter != nil {
		authRoutes = r.Group(deps.AuthLimiter)
	}
	authRoutes.Post("/api/auth/send-otp", deps.AuthHandler.SendOTP)
	authRoutes.Post("/api/auth/verify-otp", deps.AuthHandler.VerifyOTP)
	authRoutes.Post("/api/auth/signup", deps.AuthHandler.Signup)
	authRoutes.Post("/api/auth/login", deps.AuthHandler.Login)
	authed.Get("/api/auth/me", deps.AuthHandler.Me)

	// Shops
	r.Get("/api/shops", deps.ShopHandler.List)
	r.Get("/api/shops/{id}", deps.ShopHandler.Get)
	authed.Post("/api/shops", deps.ShopHandler.Create)
	authed.Get("/api/shops/owner/my-shops", deps.ShopHandler.MyShops)
	authed.Put("/api/shops/{id}", deps.ShopHandler.Update)
	authed.Delete("/api/shops/{id}", deps.ShopHandler.Delete)

	// Products
	r.Get("/api/products", deps.ProductHandler.List)
	r.Get("/api/products/{id}", deps.ProductHandler.Get)
	r.Get("/api/products/shop/{shopId}", deps.ProductHandler.ListByShop)
	authed.Get(exportPath, deps.ProductHandler.Export)
	authed.Post("/api/products", deps.ProductHandler.Create)
	authed.Put("/api/products/{id}", deps.ProductHandler.Update)
	authed.Delete("/api/products/{id}", deps.ProductHandler.Delete)

	// Cart
	authed.Get("/api/cart", deps.CartHandler.Get)
	authed.Post("/api/cart", deps.CartHandler.Add)
	authed.Put("/api/cart", deps.CartHandler.Update)
	authed.Delete("/api/cart", deps.CartHandler.Clear)
	authed.Post("/api/cart/add", deps.CartHandler.Add)
	authed.Put("/api/cart/update", deps.CartHandler.Update)
	authed.Delete("/api/cart/remove/{productId}", deps.CartHandler.Remove)
	authed.Delete("/api/cart/clear", deps.CartHandler.Clear)

	// Orders
	authed.Get("/api/orders", deps.OrderHandler.List)
	authed.Post("/api/orders", deps.OrderHandler.Create)
	authed.Get("/api/orders/my-orders", deps.OrderHandler.MyOrders)
	authed.Get("/api/orders/shop-orders", deps.OrderHandler.ShopOrders)
	authed.Get("/api/orders/{id}", deps.OrderHandler.Get)
	authed.Put("/api/orders/{id}/status", deps.OrderHandler.UpdateStatus)
	authed.Put("/api/orders/{id}/cancel", deps.OrderHandler.Cancel)

	// Users
	authed.Get("/api/users/profile", deps.UserHandler.Profile)
	authed.Put("/api/users/profile", deps.UserHandler.UpdateProfile)
	authed.Put("/api/users/password", deps.UserHandler.ChangePassword)
	r.Get("/api/users/{id}", deps.UserHandler.PublicProfile)

	r.NotFound(handler.NotFoundResponse)
}
