package app

import (
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/http"
	"github.com/guttosm/recipe-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	RecipeHandler *http.RecipeHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var handlerOpts []http.HandlerOption
	if services.Notifier != nil {
		handlerOpts = append(handlerOpts, http.WithNotifier(services.Notifier))
	}

	handler := http.NewHandler(services.Shopping, handlerOpts...)
	recipeHandler := http.NewRecipeHandler(services.Recipes)
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		}
		healthHandler.RegisterCircuitBreaker("mongodb_recipes", dbComponents.RecipesCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		RequestTimeout:    cfg.Server.RequestTimeout,
		LoggingService:    loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		RecipeHandler: recipeHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
