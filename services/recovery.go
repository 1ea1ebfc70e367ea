package services

import (
	"context"
	"errors"
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"gorm.io/gorm"
)

// RecoveryService drives password recovery. It distinguishes USER_NOT_FOUND
// from EMAIL_NOT_VERIFIED; the auth handler deliberately collapses both into
// one generic message so unauthenticated callers cannot enumerate emails.
type RecoveryService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewRecoveryService(db *gorm.DB, tokens *TokenService) *RecoveryService {
	return &RecoveryService{db: db, tokens: tokens}
}

// GeneratePasswordRecoveryToken persists a one-hour token on the user row.
func (s *RecoveryService) GeneratePasswordRecoveryToken(ctx context.Context, email string) (TokenData, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenData{}, nil, ErrNotFound
		}
		return TokenData{}, nil, err
	}

	if !user.IsVerified {
		return TokenData{}, nil, ErrEmailNotVerified
	}

	data, err := s.tokens.GeneratePasswordRecoveryToken()
	if err != nil {
		return TokenData{}, nil, err
	}

	updates := map[string]any{
		"password_reset_token":   data.Token,
		"password_reset_expires": data.ExpiresAt,
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return TokenData{}, nil, err
	}

	return data, &user, nil
}

// ValidatePasswordRecoveryToken checks a token without consuming it, so the
// frontend can validate the link before showing the reset form.
func (s *RecoveryService) ValidatePasswordRecoveryToken(ctx context.Context, token string) (*models.User, error) {
	if !s.tokens.IsValidTokenFormat(token) {
		return nil, ErrTokenInvalid
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("password_reset_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	if user.PasswordResetExpires == nil {
		return nil, ErrTokenInvalid
	}
	if err := s.tokens.ValidateToken(token, *user.PasswordResetExpires); err != nil {
		return nil, err
	}

	return &user, nil
}

// ResetPassword re-validates the token, replaces the stored hash, and nulls
// the token columns in the same update. At-most-once consumption.
func (s *RecoveryService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.ValidatePasswordRecoveryToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"password_hash":          hash,
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	}
	return s.db.WithContext(ctx).Model(user).Updates(updates).Error
}

// CleanupExpiredRecoveryTokens bulk-nulls token columns on every user whose
// recovery token has lapsed. Meant to run from an external cron; nothing in
// the process schedules it.
func (s *RecoveryService) CleanupExpiredRecoveryTokens(ctx context.Context) (int64, error) {
	updates := map[string]any{
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	}
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("password_reset_token IS NOT NULL AND password_reset_expires < ?", time.Now()).
		Updates(updates)
	return res.RowsAffected, res.Error
}
