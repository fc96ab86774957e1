package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/service"
)

const auditWriteTimeout = 5 * time.Second

// AuditLog records a recipe or shopping list action. The entry goes through the
// async logger when one is running so that audit writes share its worker pool.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, recipeIDs []int64, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "info", actionType, message, recipeIDs, fields)
	writeAuditEntry(loggingService, entry)
}

// AuditLogError records a failed action together with its error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, recipeIDs []int64, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "error", actionType, message, recipeIDs, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	writeAuditEntry(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, recipeIDs []int64, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		RecipeIDs:  recipeIDs,
		Fields:     fields,
	}
}

func writeAuditEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
