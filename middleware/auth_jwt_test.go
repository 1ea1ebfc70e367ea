package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthTestApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	app := fiber.New()
	handlers := append([]fiber.Handler{RequireAuth()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		claims, _ := GetJWTClaims(c)
		return c.JSON(fiber.Map{"user_id": claims.UserID, "role": claims.Role})
	})
	app.Get("/protected", handlers...)
	return app
}

func signedTokenFor(t *testing.T, role models.Role) string {
	t.Helper()

	token, _, err := utils.GenerateAccessToken(models.User{
		Model: gorm.Model{ID: 12},
		Email: "ana@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestRequireAuthPassesValidToken(t *testing.T) {
	app := newAuthTestApp(t)
	token := signedTokenFor(t, models.RoleUser)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(12), body["user_id"])
}

func TestRequireAuthMissingAndMalformedHeaders(t *testing.T) {
	app := newAuthTestApp(t)

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"no header", "", "NO_TOKEN"},
		{"not bearer", "Basic abc123", "TOKEN_INVALID"},
		{"bearer without token", "Bearer", "TOKEN_INVALID"},
		{"garbage token", "Bearer not.a.jwt", "TOKEN_INVALID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var body utils.APIResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Error)
		})
	}
}

func TestAuthorizeRolesBlocksOutsiders(t *testing.T) {
	app := newAuthTestApp(t, RequireAdmin())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedTokenFor(t, models.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedTokenFor(t, models.RoleAdmin))

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthorizeRolesAllowsAnyListedRole(t *testing.T) {
	app := newAuthTestApp(t, AuthorizeRoles(models.RoleAdmin, models.RoleMechanic))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedTokenFor(t, models.RoleMechanic))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
