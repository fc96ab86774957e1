package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// skipPersistPaths are logged to the console but never stored.
var skipPersistPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
	"/ping":    true,
}

// RequestLogger logs each request with zerolog and, when loggingService is
// set, stores it through the async logger. Probe and scrape endpoints are not
// stored.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path

		event := log.WithLevel(zerologLevel(statusCode)).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if route := c.FullPath(); route != "" && route != path {
			event = event.Str("route", route)
		}
		event.Msg("HTTP request")

		if loggingService == nil || skipPersistPaths[path] {
			return
		}

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(statusCode),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}

func zerologLevel(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
