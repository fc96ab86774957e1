package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "custom shard count", numShards: 8, wantShards: 8},
		{name: "zero falls back to default", numShards: 0, wantShards: defaultNumShards},
		{name: "negative falls back to default", numShards: -3, wantShards: defaultNumShards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, 10, rl.rate)
			assert.Equal(t, time.Minute, rl.window)
		})
	}
}

func TestShardedRateLimiter_CheckRateLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	for want := 2; want >= 0; want-- {
		ok, remaining, reset := rl.checkRateLimit("ip:10.0.0.1")
		require.True(t, ok)
		assert.Equal(t, want, remaining)
		assert.LessOrEqual(t, reset, time.Minute)
	}

	ok, remaining, reset := rl.checkRateLimit("ip:10.0.0.1")
	assert.False(t, ok)
	assert.Zero(t, remaining)
	assert.Greater(t, reset, time.Duration(0))

	ok, _, _ = rl.checkRateLimit("ip:10.0.0.2")
	assert.True(t, ok, "other visitors keep their own budget")
}

func TestShardedRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(50, time.Minute)
	defer rl.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _, _ := rl.checkRateLimit("ip:shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestShardedRateLimiter_RateLimit_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/api/recipes", func(c *gin.Context) { c.Status(http.StatusOK) })

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		router.ServeHTTP(last, req)

		if i < 2 {
			assert.Equal(t, http.StatusOK, last.Code)
			assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(1-i), last.Header().Get("X-RateLimit-Remaining"))
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
	retryAfter, err := strconv.Atoi(last.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.InDelta(t, 60, retryAfter, 1)
}

func TestShardedRateLimiter_KeyRateLimit_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.KeyRateLimit())
	router.POST("/api/shopping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(key string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/shopping", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		if key != "" {
			req.Header.Set(APIKeyHeader, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("mobile"))
	assert.Equal(t, http.StatusTooManyRequests, send("mobile"))
	assert.Equal(t, http.StatusOK, send("kiosk"), "a second key on the same IP has its own budget")
	assert.Equal(t, http.StatusOK, send(""), "requests without a key are limited by IP")
	assert.Equal(t, http.StatusTooManyRequests, send(""))
}

func TestClientIdentifier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "198.51.100.7:5555"
	assert.Equal(t, "ip:198.51.100.7", clientIdentifier(c))

	c.Request.Header.Set(APIKeyHeader, "secret-key")
	id := clientIdentifier(c)
	assert.True(t, strings.HasPrefix(id, "key:"))
	assert.NotContains(t, id, "secret-key")
}

func TestShardedRateLimiter_StatsAndCleanup(t *testing.T) {
	rl := NewShardedRateLimiter(5, 10*time.Millisecond, 4)
	defer rl.Stop()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		rl.checkRateLimit(id)
	}

	total, perShard := rl.Stats()
	assert.Equal(t, 5, total)
	assert.Len(t, perShard, 4)

	time.Sleep(30 * time.Millisecond)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Zero(t, total)
}

func TestShardedRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	ok, _, _ := rl.checkRateLimit("ip:1")
	require.True(t, ok)
	ok, _, _ = rl.checkRateLimit("ip:1")
	require.False(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, _, _ = rl.checkRateLimit("ip:1")
	assert.True(t, ok)
}

func TestShardedRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
