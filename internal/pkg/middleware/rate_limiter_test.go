package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func TestRateLimiterMiddleware(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	e := echo.New()
	limiter := RateLimiterMiddleware(RateLimiterConfig{
		Redis:    redisClient,
		Resource: "login",
		Limit:    2,
		Period:   time.Minute,
	})
	h := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/merchant/login", nil)
		req.Header.Set(echo.HeaderXRealIP, "41.202.1.10")
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec
	}

	first := call()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, call().Code)

	blocked := call()
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, call().Code)
}

func TestRateLimiterMiddleware_RedisDown(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	mr.Close()

	e := echo.New()
	h := RateLimiterMiddleware(RateLimiterConfig{
		Redis:    redisClient,
		Resource: "login",
		Limit:    1,
		Period:   time.Minute,
	})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/merchant/login", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
