package services

import (
	"context"
	"testing"
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyEmailRoundTrip(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())
	ctx := context.Background()

	user := createTestUser(t, db, "ana@example.com", false)

	data, err := svc.GenerateVerificationToken(ctx, user.ID)
	require.NoError(t, err)

	verified, err := svc.VerifyEmail(ctx, data.Token)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationToken)
	assert.Nil(t, verified.VerificationExpires)

	// The token was cleared on consumption, so replaying it fails.
	_, err = svc.VerifyEmail(ctx, data.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.VerificationToken)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())

	_, err := svc.VerifyEmail(context.Background(),
		"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyEmailMalformedToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())

	_, err := svc.VerifyEmail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())
	ctx := context.Background()

	user := createTestUser(t, db, "ana@example.com", false)
	data, err := svc.GenerateVerificationToken(ctx, user.ID)
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("verification_expires", expired).Error)

	_, err = svc.VerifyEmail(ctx, data.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestResendVerificationInvalidatesPreviousToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())
	ctx := context.Background()

	user := createTestUser(t, db, "ana@example.com", false)

	first, err := svc.GenerateVerificationToken(ctx, user.ID)
	require.NoError(t, err)

	second, _, err := svc.ResendVerificationEmail(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	_, err = svc.VerifyEmail(ctx, first.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.VerifyEmail(ctx, second.Token)
	assert.NoError(t, err)
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())

	user := createTestUser(t, db, "ana@example.com", true)

	_, _, err := svc.ResendVerificationEmail(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestResendVerificationUserNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())

	_, _, err := svc.ResendVerificationEmail(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsUserVerified(t *testing.T) {
	db := openTestDB(t)
	svc := NewVerificationService(db, NewTokenService())
	ctx := context.Background()

	unverified := createTestUser(t, db, "ana@example.com", false)
	verified := createTestUser(t, db, "leo@example.com", true)

	got, err := svc.IsUserVerified(ctx, unverified.ID)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = svc.IsUserVerified(ctx, verified.ID)
	require.NoError(t, err)
	assert.True(t, got)
}
