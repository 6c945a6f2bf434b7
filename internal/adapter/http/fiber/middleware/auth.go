package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/condomino/internal/ports"
)

// AuthRequired resolves the bearer token to an identity once per
// request and stores it in Locals.
func AuthRequired(service ports.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization header format"})
		}

		identity, err := service.ResolveToken(c.UserContext(), parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("identity", identity)
		c.Locals("user_id", identity.UserID)
		c.Locals("user_role", identity.Role)

		return c.Next()
	}
}

// Identity returns the authenticated identity stored by AuthRequired,
// or nil when the request was not authenticated.
func Identity(c *fiber.Ctx) *ports.Identity {
	identity, _ := c.Locals("identity").(*ports.Identity)
	return identity
}

// RoleRequired allows the request through only for the given roles.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := Identity(c)
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}
		for _, role := range roles {
			if string(identity.Role) == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
