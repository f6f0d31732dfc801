package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xumparim-tech/Zippida/handlers"
	"github.com/xumparim-tech/Zippida/middleware"
)

// Auth endpoints share a fixed request budget per client per window.
const (
	authRateBudget = 20
	authRateWindow = 15 * time.Minute
)

const rateLimitMessage = "Too many attempts. Please try again in 15 minutes."

// Deps carries everything the route table wires together.
type Deps struct {
	Auth     *handlers.AuthHandler
	Products *handlers.ProductHandler
	Orders   *handlers.OrderHandler
	Seed     *handlers.SeedHandler
	Users    middleware.UserFinder
	Secret   []byte
}

// SetupRoutes registers the full API surface.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	// ── Auth & users (rate limited) ────────────────────────────────
	users := api.Group("/users", middleware.RateLimit(authRateBudget, authRateWindow, rateLimitMessage))
	{
		users.POST("/register", d.Auth.Register)
		users.POST("/login", d.Auth.Login)
	}

	// ── Catalog ────────────────────────────────────────────────────
	api.GET("/products", d.Products.List)

	adminProducts := api.Group("/products", middleware.AuthRequired(d.Secret, d.Users), middleware.AdminRequired())
	{
		adminProducts.POST("", d.Products.Create)
		adminProducts.DELETE("/:id", d.Products.Delete)
	}

	// ── Orders ─────────────────────────────────────────────────────
	api.POST("/orders", middleware.OptionalAuth(d.Secret), d.Orders.Place)
	api.GET("/orders", middleware.AuthRequired(d.Secret, d.Users), d.Orders.List)
	api.PUT("/orders/:id", middleware.AuthRequired(d.Secret, d.Users), middleware.AdminRequired(), d.Orders.UpdateStatus)

	// ── Admin bootstrap ────────────────────────────────────────────
	api.GET("/seed", d.Seed.Seed)
}
