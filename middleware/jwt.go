package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"belshop/utils"
)

// JWT guards a route behind bearer-token auth and stashes the token subject
// in c.Locals("user") for the handler.
func JWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		user, err := utils.ParseJWTToken(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("user", user)
		return c.Next()
	}
}
