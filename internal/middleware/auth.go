package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/auth"
	"github.com/wakili/console/internal/cache"
)

// AuthMiddleware requires a valid admin JWT. When a cache is available the
// token is also checked against the logout denylist; a cache outage fails
// open so a Redis restart never locks every operator out.
func AuthMiddleware(jwtSecret string, redisCache *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateAccessToken(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		if redisCache != nil {
			if denied, err := redisCache.IsTokenDenied(c.Request.Context(), token); err == nil && denied {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token has been revoked"})
				c.Abort()
				return
			}
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminName", claims.Name)
		c.Set("adminRole", claims.Role)
		c.Set("accessToken", token)

		c.Next()
	}
}

// RequireRole gates a route group to the given admin roles. It runs after
// AuthMiddleware and trusts the claims it stored on the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("adminRole")
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
