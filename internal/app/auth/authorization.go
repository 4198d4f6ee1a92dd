package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/app/repositories"
	"github.com/campushq/mentorhub/internal/pkg/apperrors"
	"github.com/campushq/mentorhub/internal/pkg/logger"
)

// AuthorizationService handles role checks against the stored user record.
// Token claims carry the role too, but gated operations re-check the
// database so a stale token cannot outlive a role change.
type AuthorizationService struct {
	userRepo *repositories.UserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo *repositories.UserRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// GetUserInfo returns user information
func (s *AuthorizationService) GetUserInfo(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in GetUserInfo")
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	return user, nil
}

// HasRole checks whether the user holds the given role
func (s *AuthorizationService) HasRole(ctx context.Context, userID int64, role models.RoleType) (bool, error) {
	user, err := s.GetUserInfo(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Role == role, nil
}

// ValidateRole validates that the user holds the given role or returns
// a permission error.
func (s *AuthorizationService) ValidateRole(ctx context.Context, userID int64, role models.RoleType) error {
	ok, err := s.HasRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError(fmt.Sprintf("this operation requires the %s role", role))
	}
	return nil
}

// ValidateMentor validates that the user is a mentor
func (s *AuthorizationService) ValidateMentor(ctx context.Context, userID int64) error {
	return s.ValidateRole(ctx, userID, models.RoleMentor)
}

// ValidateAdmin validates that the user is an admin
func (s *AuthorizationService) ValidateAdmin(ctx context.Context, userID int64) error {
	return s.ValidateRole(ctx, userID, models.RoleAdmin)
}
