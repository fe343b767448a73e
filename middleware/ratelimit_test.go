package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rl := &rateLimiter{
		requests: make(map[string]*clientRequest),
		limit:    limit,
		window:   window,
	}
	router := gin.New()
	router.Use(rl.middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func get(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAboveLimit(t *testing.T) {
	router := newLimitedRouter(2, time.Minute)

	for i := 0; i < 2; i++ {
		if code := get(router); code != http.StatusOK {
			t.Fatalf("request %d returned %d, want 200", i+1, code)
		}
	}
	if code := get(router); code != http.StatusTooManyRequests {
		t.Errorf("request above limit returned %d, want 429", code)
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	router := newLimitedRouter(1, 30*time.Millisecond)

	if code := get(router); code != http.StatusOK {
		t.Fatalf("first request returned %d, want 200", code)
	}
	if code := get(router); code != http.StatusTooManyRequests {
		t.Fatalf("second request returned %d, want 429", code)
	}

	time.Sleep(50 * time.Millisecond)
	if code := get(router); code != http.StatusOK {
		t.Errorf("request after window returned %d, want 200", code)
	}
}

func TestRateLimitEnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT", "7")
	if got := envInt("RATE_LIMIT", 100); got != 7 {
		t.Errorf("envInt = %d, want 7", got)
	}

	t.Setenv("RATE_LIMIT", "not-a-number")
	if got := envInt("RATE_LIMIT", 100); got != 100 {
		t.Errorf("envInt with garbage = %d, want fallback 100", got)
	}

	t.Setenv("RATE_LIMIT", "-5")
	if got := envInt("RATE_LIMIT", 100); got != 100 {
		t.Errorf("envInt with negative = %d, want fallback 100", got)
	}

	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	if got := envDuration("RATE_LIMIT_WINDOW", time.Minute); got != 30*time.Second {
		t.Errorf("envDuration = %v, want 30s", got)
	}

	t.Setenv("RATE_LIMIT_WINDOW", "soon")
	if got := envDuration("RATE_LIMIT_WINDOW", time.Minute); got != time.Minute {
		t.Errorf("envDuration with garbage = %v, want fallback 1m", got)
	}
}
