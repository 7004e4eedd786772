package web

import (
	"strings"

	"github.com/Aranruth94/book-social-network/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// RequireAuth verifies the bearer token and stores the principal's user id in
// the request locals. Services never read ambient state; handlers pass the id
// down explicitly.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(userIDKey, claims.UserID)
		return c.Next()
	}
}

// CurrentUserID returns the authenticated principal set by RequireAuth.
func CurrentUserID(c *fiber.Ctx) int {
	id, _ := c.Locals(userIDKey).(int)
	return id
}
