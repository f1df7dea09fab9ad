package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/utils"
)

// Counter is the subset of the Redis client the rate limiter needs
type Counter interface {
	Incr(ctx context.Context, key string, expiration time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter Counter
	Limit   int           // Maximum number of requests per period
	Period  time.Duration // Time period for the limit
	Message string        // body of the 429 response
}

// RateLimiterMiddleware limits requests per client IP and route with fixed
// window counters. Counter failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), c.RealIP())

			count, err := config.Counter.Incr(ctx, key, config.Period)
			if err != nil {
				logger.Warn("Rate limiter unavailable",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl, err := config.Counter.TTL(ctx, key)
				if err != nil || ttl <= 0 {
					ttl = config.Period
				}
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

				message := config.Message
				if message == "" {
					message = "Rate limit exceeded"
				}
				return utils.TooManyRequestsResponse(c, message, int((ttl+time.Second-1)/time.Second))
			}

			header.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter creates a per-IP limiter allowing limit requests per minute
func IPRateLimiter(limit int, counter Counter, message string) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter: counter,
		Limit:   limit,
		Period:  time.Minute,
		Message: message,
	})
}
