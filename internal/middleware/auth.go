package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"filebot/internal/service/auth"
)

// AuthRequired guards the ops routes with the short-lived admin token. There
// are no user accounts behind it; valid claims are all that is checked.
func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil || claims.Role != "admin" {
			return Unauthorized("Invalid or expired token")
		}

		return c.Next()
	}
}
