// Package main is the entry point for the recipe-service application.
//
// @title           Recipe Service API
// @version         1.0.0
// @description     Stores recipes and builds consolidated shopping lists from selected recipes,
// @description     scaled to the number of persons to cook for.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/recipe-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Recipes
// @tag.description Recipe storage
//
// @tag.name        Shopping
// @tag.description Shopping list aggregation
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/recipe-service/docs" // swagger docs

	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := server.Run(ctx)
	stop()
	application.Close()

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
