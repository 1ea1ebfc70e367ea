package handlers

import (
	"errors"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondServiceError translates a workflow failure into the HTTP envelope.
// Expected business-rule failures map to their taxonomy code; anything else
// is logged server-side and surfaced as a bare 500 INTERNAL.
func respondServiceError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, services.ErrPastDate):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "PAST_DATE", "reservation date cannot be in the past")
	case errors.Is(err, services.ErrSlotTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, "SLOT_TAKEN", "the requested slot is already booked")
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, services.ErrInvalidState):
		return utils.ErrorResponse(c, fiber.StatusConflict, "INVALID_STATE", "operation not permitted in the current status")
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "you do not have access to this resource")
	case errors.Is(err, services.ErrUnauthenticated):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "invalid credentials")
	case errors.Is(err, services.ErrTokenExpired):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "TOKEN_EXPIRED", "token has expired")
	case errors.Is(err, services.ErrTokenInvalid):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "TOKEN_INVALID", "token is invalid")
	case errors.Is(err, services.ErrAlreadyVerified):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "USER_ALREADY_VERIFIED", "account is already verified")
	case errors.Is(err, services.ErrEmailNotVerified):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "EMAIL_NOT_VERIFIED", "email must be verified")
	case errors.Is(err, services.ErrAccountSuspended):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "ACCOUNT_SUSPENDED", "account is suspended")
	default:
		log.WithError(err).Error("unexpected service failure")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
