package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

// ErrorHandler logs errors attached to the gin context and, when the handler
// has not written a response yet, renders one. An open circuit breaker maps to
// 503 and an expired deadline to 504; everything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)

		log.Error().
			Str("request_id", requestID).
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		status, code, key := classifyError(err)
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(code, message).WithRequestID(requestID))
	}
}

func classifyError(err error) (status int, code, messageKey string) {
	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, dto.ErrCodeServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
	}
}
