package middleware

import (
	"net/http"
	"strings"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "claims"
	userIDKey = "userID"
	roleKey   = "role"
)

// AuthMiddleware parses the bearer token and stores its claims in the gin
// context. The token claims are the request identity; the user row is not
// re-read per request.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(claimsKey, claims)
		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects requests whose token role is not in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(roleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
			return
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetClaims returns the full token claims from the gin context.
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
