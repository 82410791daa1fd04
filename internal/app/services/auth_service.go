package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/repositories"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/nmcleod/rollcall/internal/pkg/auth"
	"github.com/nmcleod/rollcall/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, credential string) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID string) (*dto.MeResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login resolves or lazily creates the user behind a credential and issues a
// token. The credential is a username or an email; emails are lower-cased.
func (s *authServiceImpl) Login(ctx context.Context, credential string) (*dto.LoginResponse, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, apperrors.NewValidationError("credential is required")
	}

	isEmail := false
	if validation.IsEmail(strings.ToLower(credential)) {
		credential = strings.ToLower(credential)
		isEmail = true
	} else if len(credential) < validation.UsernameMinLength || len(credential) > validation.UsernameMaxLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"username must be between %d and %d characters",
			validation.UsernameMinLength, validation.UsernameMaxLength))
	}

	user, err := s.userRepo.GetByCredential(ctx, credential)
	switch {
	case err == nil:
		if err := s.userRepo.TouchLastLogin(ctx, user.UserID); err != nil {
			return nil, err
		}
	case errors.Is(err, repositories.ErrUserNotFound):
		now := time.Now()
		user = &models.User{
			UserID:    uuid.NewString(),
			LastLogin: &now,
		}
		if isEmail {
			user.Email = credential
		} else {
			user.Username = credential
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info().Str("userID", user.UserID).Msg("Created new user on first login")
	default:
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.UserID, user.Credential())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.UserInfo{
			UserID:     user.UserID,
			Credential: user.Credential(),
		},
	}, nil
}

// Me returns the identity behind a resolved token.
func (s *authServiceImpl) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, &apperrors.Error{Err: apperrors.ErrAuthRequired, Message: "Authentication required"}
		}
		return nil, err
	}

	return &dto.MeResponse{
		Success: true,
		User: dto.UserInfo{
			UserID:     user.UserID,
			Credential: user.Credential(),
		},
	}, nil
}
