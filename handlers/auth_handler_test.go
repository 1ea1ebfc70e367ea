package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/config"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	tokens := services.NewTokenService()
	h := NewAuthHandler(
		db,
		services.NewVerificationService(db, tokens),
		services.NewRecoveryService(db, tokens),
		mailer.NewClient(config.EmailConfig{}),
		config.AppConfig{FrontendURL: "http://localhost:5173"},
		logrus.New(),
	)

	app := fiber.New()
	app.Post("/auth/resend-verification", h.ResendVerification)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, utils.APIResponse) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope utils.APIResponse
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	return resp.StatusCode, envelope
}

func TestResendVerificationIssuesToken(t *testing.T) {
	app, db := newAuthTestApp(t)
	user := createTestUser(t, db, "ana@example.com", false)

	status, envelope := postJSON(t, app, "/auth/resend-verification", `{"email":"ana@example.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, envelope.Success)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.VerificationToken)
	assert.Len(t, *stored.VerificationToken, 64)
}

func TestResendVerificationValidatesEmail(t *testing.T) {
	app, _ := newAuthTestApp(t)

	status, envelope := postJSON(t, app, "/auth/resend-verification", `{"email":"not-an-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error)
}

func TestResendVerificationUnknownEmail(t *testing.T) {
	app, _ := newAuthTestApp(t)

	status, envelope := postJSON(t, app, "/auth/resend-verification", `{"email":"ghost@example.com"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", envelope.Error)
}
