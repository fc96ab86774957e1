package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
)

// APIKeyHeader carries the client key on every protected request.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth rejects requests whose X-API-Key header does not match one of
// keys. Blank keys are ignored, and with no keys left every request passes.
func APIKeyAuth(keys []string) gin.HandlerFunc {
	valid := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			valid = append(valid, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(valid) == 0 {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		if !matchesAny(valid, []byte(key)) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}

func matchesAny(valid [][]byte, key []byte) bool {
	found := 0
	for _, v := range valid {
		found |= subtle.ConstantTimeCompare(v, key)
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	locale := i18n.GetLocale(c)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(messageKey, locale)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
