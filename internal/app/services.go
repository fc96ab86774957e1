package app

import (
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/notifier"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Shopping *service.ShoppingListService
	Recipes  service.RecipeService
	// Notifier is nil when no SMTP credentials are configured.
	Notifier notifier.Notifier
}

// InitializeServices builds the shopping-list and recipe services on top of
// repo. A nil repo selects the in-memory recipe store.
func InitializeServices(cfg config.Config, repo repository.RecipeRepositoryInterface) *ServiceComponents {
	if repo == nil {
		log.Warn().Msg("Recipe store is in-memory; recipes are lost on restart")
		repo = repository.NewInMemoryRecipeRepository()
	}

	basics, err := service.LoadBasicIngredients(cfg.Shopping.BasicIngredientsFile, cfg.Shopping.BasicIngredientsLocales)
	if err != nil {
		log.Error().Err(err).
			Str("file", cfg.Shopping.BasicIngredientsFile).
			Msg("Failed to load basic ingredients - using built-in list")
		basics = service.DefaultBasicIngredients()
	}
	log.Debug().Int("count", basics.Len()).Msg("Basic ingredients loaded")

	opts := []service.ShoppingListOption{
		service.WithBasicIngredients(basics),
		service.WithLookupConcurrency(cfg.Shopping.LookupConcurrency),
	}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	shopping := service.NewShoppingListService(repo, opts...)
	recipes := service.NewRecipeService(repo, service.WithChangeHook(shopping.InvalidateCache))

	components := &ServiceComponents{
		Shopping: shopping,
		Recipes:  recipes,
	}

	smtpCfg := smtpConfig(cfg.Mail)
	if smtpCfg.Enabled() {
		components.Notifier = notifier.NewSMTPNotifier(smtpCfg)
		log.Info().Str("host", smtpCfg.Host).Msg("Shopping list email delivery enabled")
	}

	return components
}

func smtpConfig(cfg config.MailConfig) notifier.SMTPConfig {
	return notifier.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		Timeout:  cfg.Timeout,
	}
}
