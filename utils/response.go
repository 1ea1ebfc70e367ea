package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIResponse is the envelope every endpoint returns. Error carries a
// stable taxonomy code (VALIDATION_ERROR, NOT_FOUND, ...) clients can
// branch on; Message stays human-readable.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type PaginatedData struct {
	Items interface{}    `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

func SuccessResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}
	return c.Status(statusCode).JSON(APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, code string, message string) error {
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}
	return c.Status(statusCode).JSON(APIResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

func PaginatedResponse(c *fiber.Ctx, statusCode int, message string, items interface{}, meta PaginationMeta) error {
	return SuccessResponse(c, statusCode, message, PaginatedData{Items: items, Meta: meta})
}

// IsDuplicateError matches the driver-level unique constraint violation
// (MySQL "Duplicate entry", SQLite "UNIQUE constraint failed").
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
