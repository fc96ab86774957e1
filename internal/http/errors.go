package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/middleware"
	"github.com/guttosm/recipe-service/internal/service"
)

// LoggingServiceKey is the gin context key holding the service.LoggingService.
const LoggingServiceKey = "logging_service"

// respondServiceError maps errors from the recipe and shopping services to
// HTTP responses.
func respondServiceError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotFound, err)
	case errors.Is(err, service.ErrInvalidRecipe):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrEmptyInput):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyNoRecipesSelected, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, service.ErrLookupFailure):
		builder.Error(http.StatusBadGateway, i18n.ErrKeyRecipeLookupFailed, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func loggingService(c *gin.Context) service.LoggingService {
	v, ok := c.Get(LoggingServiceKey)
	if !ok {
		return nil
	}
	ls, _ := v.(service.LoggingService)
	return ls
}

func audit(c *gin.Context, action, message string, recipeIDs []int64, fields map[string]interface{}) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLog(ls, c, action, message, recipeIDs, fields)
	}
}

func auditError(c *gin.Context, action, message string, err error, recipeIDs []int64, fields map[string]interface{}) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLogError(ls, c, action, message, err, recipeIDs, fields)
	}
}
