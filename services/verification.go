package services

import (
	"context"
	"errors"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

	"gorm.io/gorm"
)

// VerificationService drives the UNVERIFIED -> VERIFIED transition. A token
// is consumed at most once: the row update that sets is_verified also nulls
// the token columns.
type VerificationService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewVerificationService(db *gorm.DB, tokens *TokenService) *VerificationService {
	return &VerificationService{db: db, tokens: tokens}
}

// GenerateVerificationToken persists a fresh token on the user, overwriting
// any outstanding one.
func (s *VerificationService) GenerateVerificationToken(ctx context.Context, userID uint) (TokenData, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenData{}, ErrNotFound
		}
		return TokenData{}, err
	}

	data, err := s.tokens.GenerateVerificationToken()
	if err != nil {
		return TokenData{}, err
	}

	updates := map[string]any{
		"verification_token":   data.Token,
		"verification_expires": data.ExpiresAt,
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return TokenData{}, err
	}

	return data, nil
}

// VerifyEmail consumes a verification token and activates the account.
func (s *VerificationService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	if !s.tokens.IsValidTokenFormat(token) {
		return nil, ErrTokenInvalid
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("verification_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}

	if user.VerificationExpires == nil {
		return nil, ErrTokenInvalid
	}
	if err := s.tokens.ValidateToken(token, *user.VerificationExpires); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"is_verified":          true,
		"verification_token":   nil,
		"verification_expires": nil,
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationExpires = nil
	return &user, nil
}

// ResendVerificationEmail regenerates the token, invalidating the previous
// one. The caller dispatches the new email.
func (s *VerificationService) ResendVerificationEmail(ctx context.Context, userID uint) (TokenData, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenData{}, nil, ErrNotFound
		}
		return TokenData{}, nil, err
	}

	if user.IsVerified {
		return TokenData{}, nil, ErrAlreadyVerified
	}

	data, err := s.GenerateVerificationToken(ctx, userID)
	if err != nil {
		return TokenData{}, nil, err
	}

	return data, &user, nil
}

func (s *VerificationService) IsUserVerified(ctx context.Context, userID uint) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("is_verified").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return user.IsVerified, nil
}
