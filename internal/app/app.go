// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/http"
	"github.com/guttosm/recipe-service/internal/middleware"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
	limiter  *middleware.ShardedRateLimiter
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var recipeRepo repository.RecipeRepositoryInterface
	if dbComponents != nil {
		recipeRepo = dbComponents.RecipeRepo
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	services := InitializeServices(cfg, recipeRepo)
	routerComponents := InitializeRouter(services, dbComponents, cfg)

	app := &App{
		Services: services,
		Database: dbComponents,
	}
	if routerComponents.Config.RateLimit > 0 {
		app.limiter = middleware.NewRateLimiter(routerComponents.Config.RateLimit, routerComponents.Config.RateWindow)
		routerComponents.Config.RateLimiter = app.limiter
	}

	app.Router = http.NewRouter(
		routerComponents.Handler,
		routerComponents.RecipeHandler,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)
	return app
}

// Close releases background workers and the database connection. It is
// called after the HTTP server has stopped.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	middleware.StopAsyncLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
