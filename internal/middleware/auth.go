package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/auth"
	"techvista_backend/internal/handlers"
	"techvista_backend/internal/logger"
	"techvista_backend/internal/models"
	"techvista_backend/pkg/apperrors"
	"techvista_backend/pkg/redisclient"
)

// Auth verifies the bearer token and stores its claims on the context.
// Missing or bad credentials answer 401; role checks downstream answer 403.
func Auth(redis *redisclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Missing or malformed Authorization header"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		blacklisted, err := redis.IsBlacklisted(c.Request.Context(), claims.ID)
		if err != nil {
			// Redis being down must not lock admins out.
			logger.CtxWithError(c.Request.Context(), "blacklist check failed", err)
		} else if blacklisted {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		handlers.SetClaims(c, claims)
		ctx := logger.WithAdminID(c.Request.Context(), claims.AdminID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole answers 403 when the authenticated session lacks the role.
func RequireRole(role models.AdminRole) gin.HandlerFunc {
	var base handlers.BaseHandler
	return func(c *gin.Context) {
		claims := base.GetClaims(c)
		if claims == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}
		if claims.Role != string(role) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}
