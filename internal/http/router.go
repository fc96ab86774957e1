package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/guttosm/recipe-service/internal/middleware"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	APIKeys           []string
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	RequestTimeout    time.Duration
	LoggingService    service.LoggingService
	// RateLimiter is created from RateLimit/RateWindow when nil. The caller
	// owns it and must Stop it on shutdown.
	RateLimiter *middleware.ShardedRateLimiter
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the recipe service.
// recipeHandler may be nil, in which case only the shopping list is served.
func NewRouter(handler *Handler, recipeHandler *RecipeHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, handler, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	groups := []RouteGroup{NewShoppingRoutes(handler)}
	if recipeHandler != nil {
		groups = append(groups, NewRecipeRoutes(recipeHandler))
	}
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	router.Use(func(c *gin.Context) {
		if cfg.LoggingService != nil {
			c.Set(LoggingServiceKey, cfg.LoggingService)
		}
		c.Next()
	})
}

// registerInfrastructureRoutes registers info, health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, handler *Handler, healthHandler *HealthHandler, cfg *RouterConfig) {
	router.GET("/", handler.Welcome)
	router.GET("/ping", handler.Ping)
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. Authentication
// runs before rate limiting so the limiter can key on the API key.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		api.Use(limiter.KeyRateLimit())
	}

	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}
