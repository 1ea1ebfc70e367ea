package services

import (
	"context"
	"testing"
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryTokenForUnknownEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecoveryService(db, NewTokenService())

	_, _, err := svc.GeneratePasswordRecoveryToken(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecoveryTokenForUnverifiedEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecoveryService(db, NewTokenService())

	createTestUser(t, db, "ana@example.com", false)

	_, _, err := svc.GeneratePasswordRecoveryToken(context.Background(), "ana@example.com")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecoveryService(db, NewTokenService())
	ctx := context.Background()

	user := createTestUser(t, db, "ana@example.com", true)
	oldHash := user.PasswordHash

	data, _, err := svc.GeneratePasswordRecoveryToken(ctx, "ana@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, data.Token, "brand-new-pass"))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)

	assert.True(t, utils.CheckPassword(stored.PasswordHash, "brand-new-pass"))
	assert.False(t, utils.CheckPassword(stored.PasswordHash, "password123"))
	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.Nil(t, stored.PasswordResetToken)
	assert.Nil(t, stored.PasswordResetExpires)

	// Consumed token cannot be replayed.
	err = svc.ResetPassword(ctx, data.Token, "another-pass")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRecoveryTokenExpired(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecoveryService(db, NewTokenService())
	ctx := context.Background()

	user := createTestUser(t, db, "ana@example.com", true)
	data, _, err := svc.GeneratePasswordRecoveryToken(ctx, "ana@example.com")
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("password_reset_expires", expired).Error)

	_, err = svc.ValidatePasswordRecoveryToken(ctx, data.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRecoveryTokenMalformed(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecoveryService(db, NewTokenService())

	_, err := svc.ValidatePasswordRecoveryToken(context.Background(), "zz")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCleanupExpiredRecoveryTokens(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecoveryService(db, NewTokenService())
	ctx := context.Background()

	expiredUser := createTestUser(t, db, "old@example.com", true)
	freshUser := createTestUser(t, db, "new@example.com", true)

	_, _, err := svc.GeneratePasswordRecoveryToken(ctx, "old@example.com")
	require.NoError(t, err)
	fresh, _, err := svc.GeneratePasswordRecoveryToken(ctx, "new@example.com")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", expiredUser.ID).
		Update("password_reset_expires", time.Now().Add(-time.Hour)).Error)

	swept, err := svc.CleanupExpiredRecoveryTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	var stored models.User
	require.NoError(t, db.First(&stored, expiredUser.ID).Error)
	assert.Nil(t, stored.PasswordResetToken)

	var storedFresh models.User
	require.NoError(t, db.First(&storedFresh, freshUser.ID).Error)
	require.NotNil(t, storedFresh.PasswordResetToken)
	assert.Equal(t, fresh.Token, *storedFresh.PasswordResetToken)
}
