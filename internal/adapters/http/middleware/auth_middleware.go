package middleware

import (
	"strings"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/config"
	"mentorhub/internal/pkg/jwt"
	"mentorhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer token and stores the verified
// claims in request locals
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		claims, err := jwt.ValidateSessionToken(token, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Session token expired")
			}
			return response.Forbidden(c, "Invalid session token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Access denied")
	}
}

// StudentOnly middleware allows only the STUDENT role
func StudentOnly() fiber.Handler {
	return RoleMiddleware(models.RoleStudent)
}

// MentorOnly middleware allows only the MENTOR role
func MentorOnly() fiber.Handler {
	return RoleMiddleware(models.RoleMentor)
}
