package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis    *database.RedisClient
	Resource string
	Limit    int
	Period   time.Duration
}

// RateLimiterMiddleware limits requests per client IP using a fixed Redis window.
// When Redis is unavailable requests are let through and the failure logged.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, c.RealIP())

			count, ttl, err := config.Redis.IncrWithExpiry(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.Warn("Rate limiter unavailable",
					logger.String("resource", config.Resource),
					logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				h.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "")
			}

			return next(c)
		}
	}
}
