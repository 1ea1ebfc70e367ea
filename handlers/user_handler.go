package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/dto"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/middleware"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewUserHandler(db *gorm.DB, log *logrus.Logger) *UserHandler {
	return &UserHandler{db: db, log: log}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	var user models.User
	if err := h.db.WithContext(c.UserContext()).First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "profile retrieved", dto.NewUserSummary(user))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	var user models.User
	if err := h.db.WithContext(c.UserContext()).First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	user.Phone = strings.TrimSpace(req.Phone)

	if err := h.db.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		h.log.WithError(err).Error("failed to update profile")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to update profile")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "profile updated successfully", dto.NewUserSummary(user))
}

// ----- admin user CRUD -----

func (h *UserHandler) AdminCreateUser(c *fiber.Ctx) error {
	var req dto.AdminUserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", joinFieldErrors(validationErrors))
	}

	hash, err := utils.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to hash password")
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         req.Role,
		// Admin-created accounts skip the email verification round-trip.
		IsVerified: true,
		IsActive:   true,
	}

	if err := h.db.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "email already exists")
		}
		h.log.WithError(err).Error("failed to create user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to create user")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "user created successfully", dto.NewAdminUserResponse(user))
}

func (h *UserHandler) AdminGetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := h.db.WithContext(c.UserContext()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
		}
		h.log.WithError(err).Error("failed to retrieve user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to retrieve user")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user retrieved successfully", dto.NewAdminUserResponse(user))
}

func (h *UserHandler) AdminListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	role := strings.TrimSpace(c.Query("role", ""))
	q := strings.TrimSpace(c.Query("q", ""))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	tx := h.db.WithContext(c.UserContext()).Model(&models.User{})
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where(h.db.Where("name LIKE ?", like).Or("email LIKE ?", like).Or("phone LIKE ?", like))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		h.log.WithError(err).Error("failed to count users")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to retrieve users")
	}

	var users []models.User
	if err := tx.Order("id DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		h.log.WithError(err).Error("failed to list users")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to retrieve users")
	}

	responses := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewAdminUserResponse(users[i]))
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.PaginatedResponse(c, fiber.StatusOK, "users retrieved successfully", responses, meta)
}

func (h *UserHandler) AdminUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := h.db.WithContext(c.UserContext()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to retrieve user")
	}

	var req dto.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", joinFieldErrors(validationErrors))
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		pwd := strings.TrimSpace(*req.Password)
		if pwd != "" {
			hash, err := utils.HashPassword(pwd)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to hash password")
			}
			user.PasswordHash = hash
		}
	}

	if err := h.db.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "email already exists")
		}
		h.log.WithError(err).Error("failed to update user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to update user")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user updated successfully", dto.NewAdminUserResponse(user))
}

// AdminDeleteUser removes the account row outright so the email becomes
// registrable again; a soft delete would keep it in the unique index.
func (h *UserHandler) AdminDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.WithContext(c.UserContext()).Unscoped().Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		h.log.WithError(result.Error).Error("failed to delete user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user deleted successfully", nil)
}

func joinFieldErrors(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}
