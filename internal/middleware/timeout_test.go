package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	assert.Equal(t, 30*time.Second, DefaultTimeoutConfig().Timeout)
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "fast request completes",
			timeout:    time.Second,
			handler:    func(c *gin.Context) { c.Status(http.StatusOK) },
			wantStatus: http.StatusOK,
		},
		{
			name:    "handler waiting on the context gets a 504",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   "timeout",
		},
		{
			name:    "late response that was written is kept",
			timeout: 10 * time.Millisecond,
			handler: func(c *gin.Context) {
				time.Sleep(20 * time.Millisecond)
				c.String(http.StatusOK, "late")
			},
			wantStatus: http.StatusOK,
			wantBody:   "late",
		},
		{
			name:       "zero timeout falls back to default",
			timeout:    0,
			handler:    func(c *gin.Context) { c.Status(http.StatusOK) },
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(TimeoutWithDuration(tt.timeout))
			router.GET("/api/shopping", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shopping", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestTimeout_ContextHasDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var deadline time.Time
	var hasDeadline bool
	router := gin.New()
	router.Use(Timeout(TimeoutConfig{Timeout: time.Second}))
	router.GET("/api/recipes", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}
