package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		path             string
		acceptEncoding   string
		expectCompressed bool
	}{
		{name: "gzip accepted", path: "/api/recipes", acceptEncoding: "gzip", expectCompressed: true},
		{name: "gzip among several encodings", path: "/api/recipes", acceptEncoding: "gzip, deflate", expectCompressed: true},
		{name: "no Accept-Encoding", path: "/api/recipes"},
		{name: "metrics endpoint excluded", path: "/metrics", acceptEncoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression())
			router.GET(tt.path, func(c *gin.Context) {
				c.String(http.StatusOK, "Flour 500 g")
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.expectCompressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
			}
		})
	}
}
