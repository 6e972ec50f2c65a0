package middleware

import (
	"fmt"
	"time"

	"clipstream/pkg/apperr"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitKey scopes the counter per path and per caller: the
// authenticated user when auth middleware already ran, the client IP
// otherwise.
func rateLimitKey(c *gin.Context) string {
	caller, exists := c.Get("user_id")
	if !exists {
		caller = c.ClientIP()
	}
	return fmt.Sprintf("rate_limit:%s:%s", c.Request.URL.Path, caller)
}

// RateLimitMiddleware must be registered after the auth middleware of
// its group so authenticated callers are limited by user, not IP.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			response.Error(c, apperr.Internal(err))
			c.Abort()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			response.Error(c, apperr.RateLimited("rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}
