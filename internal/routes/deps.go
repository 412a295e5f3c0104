package routes

import (
	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler/api"
	"github.com/dukerupert/kirana/internal/router"
)

// APIDeps contains dependencies for the /api routes
type APIDeps struct {
	// Auth resolves bearer tokens for protected routes
	Auth domain.AuthService

	// AuthLimiter throttles /api/auth/*. Nil disables the extra limit.
	AuthLimiter router.Middleware

	HealthHandler  *api.HealthHandler
	AuthHandler    *api.AuthHandler
	ShopHandler    *api.ShopHandler
	ProductHandler *api.ProductHandler
	CartHandler    *api.CartHandler
	OrderHandler   *api.OrderHandler
	UserHandler    *api.UserHandler
}
