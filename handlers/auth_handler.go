package handlers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/config"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/dto"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/middleware"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils/mailer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recoveryGenericMessage = "If the email exists, a recovery link has been sent"

type AuthHandler struct {
	db           *gorm.DB
	verification *services.VerificationService
	recovery     *services.RecoveryService
	mail         *mailer.Client
	app          config.AppConfig
	log          *logrus.Logger
	validate     *validator.Validate
}

func NewAuthHandler(db *gorm.DB, verification *services.VerificationService, recovery *services.RecoveryService, mail *mailer.Client, app config.AppConfig, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		db:           db,
		verification: verification,
		recovery:     recovery,
		mail:         mail,
		app:          app,
		log:          log,
		validate:     validator.New(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.log.WithError(err).Error("failed to hash password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to register")
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "email already registered")
		}
		h.log.WithError(err).Error("failed to create user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to register")
	}

	token, err := h.verification.GenerateVerificationToken(c.UserContext(), user.ID)
	if err != nil {
		h.log.WithError(err).WithField("user_id", user.ID).Error("failed to issue verification token")
	} else {
		h.sendVerificationEmail(user, token.Token)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		"registration successful, check your email to verify the account",
		dto.NewUserSummary(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	var user models.User
	err := h.db.WithContext(c.UserContext()).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "invalid email or password")
		}
		h.log.WithError(err).Error("login lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "login failed")
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "invalid email or password")
	}

	if !user.IsVerified {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "EMAIL_NOT_VERIFIED", "please verify your email first")
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "ACCOUNT_SUSPENDED", "account is suspended")
	}

	signed, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		h.log.WithError(err).Error("failed to sign access token")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "login failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "login successful", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        dto.NewUserSummary(user),
	})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Params("token")

	user, err := h.verification.VerifyEmail(c.UserContext(), token)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "email verified successfully", dto.NewUserSummary(*user))
}

func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var req dto.ResendVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	var user models.User
	err := h.db.WithContext(c.UserContext()).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
		}
		h.log.WithError(err).Error("resend lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to resend verification")
	}

	token, _, err := h.verification.ResendVerificationEmail(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	h.sendVerificationEmail(user, token.Token)

	return utils.SuccessResponse(c, fiber.StatusOK, "verification email sent", nil)
}

func (h *AuthHandler) VerificationStatus(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	verified, err := h.verification.IsUserVerified(c.UserContext(), claims.UserID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", dto.VerificationStatusResponse{IsVerified: verified})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	var user models.User
	if err := h.db.WithContext(c.UserContext()).First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "current password is incorrect")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		h.log.WithError(err).Error("failed to hash password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to change password")
	}

	if err := h.db.WithContext(c.UserContext()).Model(&user).Update("password_hash", hash).Error; err != nil {
		h.log.WithError(err).Error("failed to update password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to change password")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "password updated successfully", nil)
}

// Logout exists for API symmetry: access tokens are stateless, so the
// client discards its copy and the server only acknowledges.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "logged out", nil)
}

// RequestPasswordRecovery always answers the same message, whatever the
// outcome, so callers cannot probe which emails are registered. The service
// still distinguishes the cases for logging.
func (h *AuthHandler) RequestPasswordRecovery(c *fiber.Ctx) error {
	var req dto.PasswordRecoveryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, user, err := h.recovery.GeneratePasswordRecoveryToken(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrEmailNotVerified) {
			h.log.WithField("email", email).WithError(err).Info("recovery request rejected")
			return utils.SuccessResponse(c, fiber.StatusOK, recoveryGenericMessage, nil)
		}
		h.log.WithError(err).Error("failed to issue recovery token")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to process request")
	}

	h.sendRecoveryEmail(*user, token.Token)

	return utils.SuccessResponse(c, fiber.StatusOK, recoveryGenericMessage, nil)
}

func (h *AuthHandler) ValidateRecoveryToken(c *fiber.Ctx) error {
	token := c.Params("token")

	if _, err := h.recovery.ValidatePasswordRecoveryToken(c.UserContext(), token); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "token is valid", nil)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	if err := h.recovery.ResetPassword(c.UserContext(), req.Token, req.Password); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "password reset successfully", nil)
}

// Email dispatch is fire-and-forget: a mail provider outage never turns a
// successful registration or recovery request into an error response.
func (h *AuthHandler) sendVerificationEmail(user models.User, token string) {
	link := h.app.FrontendURL + "/verify-email?token=" + url.QueryEscape(token)
	go func() {
		if err := h.mail.SendVerificationEmail(user.Email, user.Name, link); err != nil {
			h.log.WithError(err).WithField("email", user.Email).Error("failed to send verification email")
		}
	}()
}

func (h *AuthHandler) sendRecoveryEmail(user models.User, token string) {
	link := h.app.FrontendURL + "/reset-password?token=" + url.QueryEscape(token)
	go func() {
		if err := h.mail.SendPasswordRecoveryEmail(user.Email, user.Name, link); err != nil {
			h.log.WithError(err).WithField("email", user.Email).Error("failed to send recovery email")
		}
	}()
}
