package app

import (
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/logger"
)

// InitializeLogger configures the global logger from the logging configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
