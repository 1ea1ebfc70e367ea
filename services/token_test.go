package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationToken(t *testing.T) {
	svc := NewTokenService()

	data, err := svc.GenerateVerificationToken()
	require.NoError(t, err)

	assert.Len(t, data.Token, 64)
	assert.True(t, svc.IsValidTokenFormat(data.Token))
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), data.ExpiresAt, time.Minute)
}

func TestGeneratePasswordRecoveryTokenExpiry(t *testing.T) {
	svc := NewTokenService()

	data, err := svc.GeneratePasswordRecoveryToken()
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(time.Hour), data.ExpiresAt, time.Minute)
}

func TestTokensAreUnique(t *testing.T) {
	svc := NewTokenService()

	a, err := svc.GenerateVerificationToken()
	require.NoError(t, err)
	b, err := svc.GenerateVerificationToken()
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
}

func TestIsValidTokenFormat(t *testing.T) {
	svc := NewTokenService()

	assert.True(t, svc.IsValidTokenFormat("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"))
	assert.False(t, svc.IsValidTokenFormat("short"))
	assert.False(t, svc.IsValidTokenFormat("0123456789ABCDEF0123456789abcdef0123456789abcdef0123456789abcdef"))
	assert.False(t, svc.IsValidTokenFormat(""))
}

func TestValidateToken(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &TokenService{now: func() time.Time { return fixed }}

	valid := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	err := svc.ValidateToken("not-a-token", fixed.Add(time.Hour))
	assert.True(t, errors.Is(err, ErrTokenInvalid))

	err = svc.ValidateToken(valid, fixed.Add(-time.Second))
	assert.True(t, errors.Is(err, ErrTokenExpired))

	assert.NoError(t, svc.ValidateToken(valid, fixed.Add(time.Hour)))
}
