package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing

	"github.com/pitchside/turf-booking/internal/handler"
	"github.com/pitchside/turf-booking/internal/middleware"
	"github.com/pitchside/turf-booking/internal/model"
)

// Handlers bundles everything the router wires up.  Cache and RateLimit
// may be pass-through middlewares when Redis is not configured.
type Handlers struct {
	Auth      *handler.AuthHandler
	Turfs     *handler.TurfHandler
	Bookings  *handler.BookingHandler
	Favorites *handler.FavoriteHandler
	JWTSecret string
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

// Register registers all application routes on the provided Echo instance.
//
// Layout:
//
//	/healthz                    – liveness probe, no auth
//	/api/auth/*                 – register/login (rate limited), /me behind JWT
//	/api/turfs (GET)            – public catalogue, response-cached
//	/api/turfs (POST/PUT/DEL)   – admin catalogue management
//	/api/bookings, /api/favorites – per-user, behind JWT
//	/api/admin/*                – admin role required
func Register(e *echo.Echo, h Handlers) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Unauthenticated auth operations.  These are the abuse-prone routes,
	// so the token bucket limiter sits directly on the group.
	auth := api.Group("/auth")
	if h.RateLimit != nil {
		auth.Use(h.RateLimit)
	}
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	// /me requires a valid access token; the handler resolves the profile
	// from the token's subject, never from client input.
	auth.GET("/me", h.Auth.Me, middleware.JWTAuth(h.JWTSecret))

	// Public turf catalogue.  Read-only and guest-accessible, so it sits
	// behind the Redis response cache when one is configured.
	turfs := api.Group("/turfs")
	if h.Cache != nil {
		turfs.GET("", h.Turfs.List, h.Cache)
		turfs.GET("/:id", h.Turfs.Get, h.Cache)
	} else {
		turfs.GET("", h.Turfs.List)
		turfs.GET("/:id", h.Turfs.Get)
	}

	// Catalogue management is admin-only.
	adminTurfs := api.Group("/turfs", middleware.JWTAuth(h.JWTSecret), middleware.RequireRole(model.RoleAdmin))
	adminTurfs.POST("", h.Turfs.Create)
	adminTurfs.PUT("/:id", h.Turfs.Update)
	adminTurfs.DELETE("/:id", h.Turfs.Delete)

	// Per-user resources: any authenticated role.
	user := api.Group("", middleware.JWTAuth(h.JWTSecret), middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	user.POST("/bookings", h.Bookings.Create)
	user.GET("/bookings", h.Bookings.List)
	user.GET("/bookings/stats", h.Bookings.Stats)
	user.POST("/bookings/:id/cancel", h.Bookings.Cancel)
	user.PUT("/favorites/:turfId", h.Favorites.Add)
	user.DELETE("/favorites/:turfId", h.Favorites.Remove)
	user.GET("/favorites", h.Favorites.List)

	// Admin dashboard feeds.
	admin := api.Group("/admin", middleware.JWTAuth(h.JWTSecret), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/bookings", h.Bookings.AdminList)
}
