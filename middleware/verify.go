package middleware

import (
	"errors"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireVerification re-fetches the caller's verification and active flags
// on every protected request, so a suspension or un-verified account takes
// effect immediately rather than at next token issue.
func RequireVerification(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}

		var user models.User
		err := db.WithContext(c.UserContext()).
			Select("is_verified", "is_active").
			First(&user, claims.UserID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "TOKEN_INVALID", "account no longer exists")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to check account status")
		}

		if !user.IsActive {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "ACCOUNT_SUSPENDED", "account is suspended")
		}
		if !user.IsVerified {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "EMAIL_NOT_VERIFIED", "email must be verified")
		}

		return c.Next()
	}
}
