package middleware

import (
	"errors"
	"strings"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	ContextClaimsKey   = "jwtClaims"
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
)

// RequireAuth is the single authoritative bearer-token check. It verifies
// the JWT and attaches the caller's identity to the request context.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "missing Authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "TOKEN_INVALID", "invalid Authorization header")
		}

		claims, err := utils.VerifyAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, utils.ErrJWTExpired) {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "TOKEN_EXPIRED", "token expired")
			}
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "TOKEN_INVALID", "invalid token")
		}

		c.Locals(ContextClaimsKey, claims)
		c.Locals(ContextUserIDKey, claims.UserID)
		c.Locals(ContextUserRoleKey, claims.Role)

		return c.Next()
	}
}

func GetJWTClaims(c *fiber.Ctx) (*utils.JWTClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.JWTClaims)
	return claims, ok
}
