package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hospital-appointment-server/internal/config"
	"hospital-appointment-server/internal/models"
	"hospital-appointment-server/internal/scheduling"
	"hospital-appointment-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication. The token is
// issued by the identity service; its id and role claims are trusted for
// authorization decisions downstream.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}
		if claims.UserID == "" {
			utils.Unauthorized(c, "Token carries no user id")
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware for role-based authorization.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			utils.InternalServerError(c, "User role not found in context. AuthMiddleware might be missing.")
			c.Abort()
			return
		}

		role, ok := userRole.(models.Role)
		if !ok {
			utils.InternalServerError(c, "User role in context is not of expected type.")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}

		utils.Forbidden(c, "You do not have permission to access this resource.")
		c.Abort()
	}
}

// PrincipalFromContext builds the scheduling principal from the claims the
// auth middleware stored.
func PrincipalFromContext(c *gin.Context) (scheduling.Principal, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return scheduling.Principal{}, false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return scheduling.Principal{}, false
	}

	userRole, exists := c.Get("userRole")
	if !exists {
		return scheduling.Principal{}, false
	}
	role, ok := userRole.(models.Role)
	if !ok {
		return scheduling.Principal{}, false
	}

	return scheduling.Principal{ID: id, Role: role}, true
}
