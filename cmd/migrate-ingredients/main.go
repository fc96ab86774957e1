// Command migrate-ingredients converts recipes whose ingredients still store
// amount and unit as one string ("200 g") into separate amount and unit fields.
//
// It reads the same MONGODB_* environment variables as the service. MongoDB
// does not need to be enabled with MONGODB_ENABLED for this command.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/logger"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/rs/zerolog/log"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "maximum duration of the migration")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	log.Logger = logger.WithContext(map[string]interface{}{"command": "migrate-ingredients"})

	if err := run(cfg.Database, *timeout); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}

func run(cfg config.DatabaseConfig, timeout time.Duration) error {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.DatabaseName, err)
	}
	defer func() {
		_ = db.Close(context.Background())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	recipes := service.NewRecipeService(repository.NewRecipeRepository(db))
	migrated, err := recipes.MigrateLegacyIngredients(ctx)
	if err != nil {
		return fmt.Errorf("after %d recipes: %w", migrated, err)
	}

	log.Info().Int("migrated", migrated).Msg("Migration complete")
	return nil
}
