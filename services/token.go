package services

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"time"
)

const (
	verificationTokenTTL = 24 * time.Hour
	recoveryTokenTTL     = time.Hour
)

var tokenPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// TokenData pairs an opaque single-use token with its expiry.
type TokenData struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService mints and checks the opaque random tokens used by the email
// verification and password recovery workflows. It has no storage of its
// own; persistence lives on the user row.
type TokenService struct {
	now func() time.Time
}

func NewTokenService() *TokenService {
	return &TokenService{now: time.Now}
}

func (s *TokenService) GenerateVerificationToken() (TokenData, error) {
	return s.generate(verificationTokenTTL)
}

func (s *TokenService) GeneratePasswordRecoveryToken() (TokenData, error) {
	return s.generate(recoveryTokenTTL)
}

func (s *TokenService) generate(ttl time.Duration) (TokenData, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return TokenData{}, err
	}
	return TokenData{
		Token:     hex.EncodeToString(buf),
		ExpiresAt: s.now().Add(ttl),
	}, nil
}

func (s *TokenService) IsValidTokenFormat(token string) bool {
	return tokenPattern.MatchString(token)
}

// ValidateToken checks format before expiry, so a malformed token is always
// reported as invalid rather than expired.
func (s *TokenService) ValidateToken(token string, expiresAt time.Time) error {
	if !s.IsValidTokenFormat(token) {
		return ErrTokenInvalid
	}
	if s.now().After(expiresAt) {
		return ErrTokenExpired
	}
	return nil
}
