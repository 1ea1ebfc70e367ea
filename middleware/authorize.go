package middleware

import (
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthorizeRoles rejects callers whose role is not in the allow-list.
// Must run after RequireAuth.
func AuthorizeRoles(allowedRoles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "authorization context missing")
		}

		if len(allowed) == 0 {
			return c.Next()
		}

		if _, ok := allowed[claims.Role]; !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "insufficient permissions")
		}

		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return AuthorizeRoles(models.RoleAdmin)
}
