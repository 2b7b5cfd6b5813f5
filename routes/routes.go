package routes

import (
	"net/http"
	"time"

	"bookmychair/handlers"
	"bookmychair/middleware"
	"bookmychair/models"
	"bookmychair/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions carries the settings NewRouter needs from configuration.
type RouterOptions struct {
	AllowedOrigins    []string
	MaxRequestsPerMin int
	Logger            *zap.Logger
}

// NewRouter builds the gin engine with global middleware and every route.
func NewRouter(opts RouterOptions, hb *handlers.HandlerBundle) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.Use(utils.RequestLogger(logger))
	r.Use(middleware.RateLimitMiddleware(opts.MaxRequestsPerMin))
	RegisterRoutes(r, hb, opts.AllowedOrigins)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: "Route not found"})
	})
	return r
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/health", hb.Health)
}

// RegisterBookingRoutes registers the booking ledger endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	{
		bookings.POST("", middleware.RequireRole(models.RoleEmployee), hb.BookChair)
		bookings.GET("/me", middleware.RequireRole(models.RoleEmployee), hb.GetMyBookings)
		bookings.GET("", middleware.RequireRole(models.RoleAdmin), hb.GetAllBookings)
		bookings.PUT("/:id/cancel", middleware.RequireRole(models.RoleEmployee, models.RoleAdmin), hb.CancelBooking)
	}
}

// RegisterChairRoutes registers the chair directory endpoints. Listing is
// open to any authenticated user; mutations are admin only.
func RegisterChairRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	chairs := api.Group("/chairs")
	{
		chairs.GET("", hb.GetChairs)

		admin := chairs.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.AddChair)
		admin.PUT("/:id/block", hb.BlockChair)
		admin.PUT("/:id/status", hb.SetChairStatus)
		admin.DELETE("/:id", hb.DeleteChair)
	}
}

// RegisterAnalyticsRoutes registers the admin usage reports.
func RegisterAnalyticsRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	analytics := api.Group("/analytics")
	{
		analytics.Use(middleware.RequireRole(models.RoleAdmin))
		analytics.GET("/popular-chairs", hb.PopularChairs)
		analytics.GET("/peak-hours", hb.PeakHours)
	}
}

// corsConfig allows any origin when none or "*" is configured. Credentials
// are only allowed for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	wildcard := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	if wildcard {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	r.Use(cors.New(corsConfig(origins)))

	api := r.Group("/api")
	RegisterHealthRoute(api, hb)

	// Everything below requires a bearer token.
	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	RegisterBookingRoutes(protected, hb)
	RegisterChairRoutes(protected, hb)
	RegisterAnalyticsRoutes(protected, hb)
	protected.GET("/events", hb.Events)
}
