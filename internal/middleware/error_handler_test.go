package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "unclassified error is internal",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred"},
		},
		{
			name: "open circuit is service unavailable",
			handler: func(c *gin.Context) {
				_ = c.Error(fmt.Errorf("list recipes: %w", circuitbreaker.ErrCircuitOpen))
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    []string{"service_unavailable"},
		},
		{
			name: "deadline is gateway timeout",
			handler: func(c *gin.Context) {
				_ = c.Error(context.DeadlineExceeded)
			},
			expectedStatus: http.StatusGatewayTimeout,
			mustContain:    []string{"timeout"},
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("logged only"))
				c.String(http.StatusBadRequest, "bad")
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "bad",
		},
		{
			name: "no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.GET("/api/recipes", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}
