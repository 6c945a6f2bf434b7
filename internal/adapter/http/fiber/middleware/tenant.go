package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/condomino/internal/tenantctx"
)

// TenantScope binds the authenticated identity's tenant into the
// request context. Tenant-scoped operations downstream read it from
// there and fail closed when it is absent, so an account without a
// condominium association simply cannot reach tenant data.
func TenantScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := Identity(c)
		if identity != nil && identity.TenantID != "" {
			c.SetUserContext(tenantctx.WithTenant(c.UserContext(), identity.TenantID))
		}
		return c.Next()
	}
}

// TenantRequired rejects requests whose identity carries no tenant.
func TenantRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := Identity(c)
		if identity == nil || identity.TenantID == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No condominium associated with this account"})
		}
		return c.Next()
	}
}
