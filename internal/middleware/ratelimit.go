package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/logger"
	"techvista_backend/pkg/apperrors"
	"techvista_backend/pkg/redisclient"
)

// RateLimit bounds requests per client IP over a sliding window. With no
// redis client configured it degrades open.
func RateLimit(redis *redisclient.Client, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + name + ":" + c.ClientIP()

		allowed, err := redis.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "rate limit check failed", err, "key", key)
			c.Next()
			return
		}
		if !allowed {
			apperrors.HandleError(c, apperrors.New(
				apperrors.CodeLimitExceeded,
				"request",
				"Too many requests, slow down",
				429,
			))
			c.Abort()
			return
		}
		c.Next()
	}
}
