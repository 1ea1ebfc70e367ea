package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEnvelopeShape(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.StatusOK, "done", fiber.Map{"id": 1})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "nope")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var ok map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "done", ok["message"])
	assert.NotContains(t, ok, "error")

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var fail map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fail))
	assert.Equal(t, false, fail["success"])
	assert.Equal(t, "NOT_FOUND", fail["error"])
	assert.NotContains(t, fail, "data")
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062 (23000): Duplicate entry 'a@b.c' for key 'users.idx_users_email'")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
