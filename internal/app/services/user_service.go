package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushq/mentorhub/internal/app/access"
	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/app/repositories"
	"github.com/campushq/mentorhub/internal/pkg/apperrors"
)

// UserService handles user listing and mentor assignment
type UserService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListVisibleUsers returns the users the principal may see, per the
// role visibility rules.
func (s *UserService) ListVisibleUsers(ctx context.Context, principalID int64) ([]dto.UserResponse, error) {
	principal, err := s.userRepo.GetUserByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponses(access.VisibleUsers(principal, dir)), nil
}

// AssignMentor sets or clears a mentee's mentor link. mentorUserID nil
// clears the link; otherwise the referenced user must hold role mentor.
func (s *UserService) AssignMentor(ctx context.Context, menteeUserID int64, mentorUserID *int64) error {
	menteeUser, err := s.userRepo.GetUserByID(ctx, menteeUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get mentee user: %w", err)
	}
	if menteeUser.Role != models.RoleMentee {
		return apperrors.NewValidationError("user is not a mentee")
	}

	menteeProfile, err := s.userRepo.GetMenteeProfileByUserID(ctx, menteeUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrMenteeProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("failed to get mentee profile: %w", err)
	}

	var mentorProfileID *int64
	if mentorUserID != nil {
		mentorUser, err := s.userRepo.GetUserByID(ctx, *mentorUserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to get mentor user: %w", err)
		}
		if mentorUser.Role != models.RoleMentor {
			return apperrors.NewValidationError("assigned user is not a mentor")
		}

		mentorProfile, err := s.userRepo.GetMentorProfileByUserID(ctx, *mentorUserID)
		if err != nil {
			if errors.Is(err, repositories.ErrMentorProfileNotFound) {
				return apperrors.ErrProfileNotFound
			}
			return fmt.Errorf("failed to get mentor profile: %w", err)
		}
		mentorProfileID = &mentorProfile.ID
	}

	if err := s.userRepo.AssignMentor(ctx, menteeProfile.ID, mentorProfileID); err != nil {
		return fmt.Errorf("failed to assign mentor: %w", err)
	}

	s.logger.Info().Int64("menteeUserID", menteeUserID).Msg("Mentor assignment updated")
	return nil
}

func (s *UserService) loadDirectory(ctx context.Context) (access.Directory, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return access.Directory{}, fmt.Errorf("failed to list users: %w", err)
	}
	mentorProfiles, err := s.userRepo.GetAllMentorProfiles(ctx)
	if err != nil {
		return access.Directory{}, fmt.Errorf("failed to list mentor profiles: %w", err)
	}
	menteeProfiles, err := s.userRepo.GetAllMenteeProfiles(ctx)
	if err != nil {
		return access.Directory{}, fmt.Errorf("failed to list mentee profiles: %w", err)
	}

	return access.Directory{
		Users:          users,
		MentorProfiles: mentorProfiles,
		MenteeProfiles: menteeProfiles,
	}, nil
}
