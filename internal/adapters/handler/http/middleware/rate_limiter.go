package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "weekly_grid:rate_limit:"

// RateLimiter is a fixed-window limiter keyed by client IP. When redis is
// unavailable requests are let through.
func RateLimiter(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("rate_limiter")

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + c.ClientIP()

		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		ttlCmd := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("redis unavailable, rate limit skipped", zap.Error(err))
			c.Next()
			return
		}

		count := incr.Val()
		ttl := ttlCmd.Val()

		// A fresh counter (or one that lost its expiry) opens a new window.
		if count == 1 || ttl < 0 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Warn("redis expire failed, dropping counter", zap.String("key", key), zap.Error(err))
				rdb.Del(ctx, key)
				c.Next()
				return
			}
			ttl = window
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, int64(limit)-count)))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
