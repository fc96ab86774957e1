package app

import (
	"context"
	"time"

	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds the MongoDB-backed repositories and their circuit breakers.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	RecipeRepo            repository.RecipeRepositoryInterface
	LoggingService        service.LoggingService
	RecipesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and wraps the recipe and log
// repositories with circuit breakers. It returns nil when the database is
// disabled or unreachable; the caller then falls back to the in-memory store.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory recipes")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
		}
		cancel()
	}

	recipesCB := circuitbreaker.New(breakerConfig(cfg, "mongodb-recipes", repository.IsRecipeNotFound))
	logsCB := circuitbreaker.New(breakerConfig(cfg, "mongodb-logs", nil))

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                    db,
		RecipeRepo:            repository.NewRecipeRepositoryWithCircuitBreaker(repository.NewRecipeRepository(db), recipesCB),
		LoggingService:        service.NewLoggingService(logsRepo),
		RecipesCircuitBreaker: recipesCB,
		LogsCircuitBreaker:    logsCB,
	}
}

func breakerConfig(cfg config.DatabaseConfig, name string, excluded func(error) bool) circuitbreaker.Config {
	def := circuitbreaker.DefaultConfig()
	c := circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsExcluded:       excluded,
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = def.FailureThreshold
	}
	if c.SuccessThreshold <= 0 {
		c.SuccessThreshold = def.SuccessThreshold
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
