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

// AchievementService handles achievement awarding and listing
type AchievementService struct {
	achievementRepo *repositories.AchievementRepository
	userRepo        *repositories.UserRepository
	logger          zerolog.Logger
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(
	achievementRepo *repositories.AchievementRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *AchievementService {
	return &AchievementService{
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// List returns the achievements visible to the principal: all for admins,
// awarded-by for mentors, awarded-to for mentees.
func (s *AchievementService) List(ctx context.Context, principalID int64) ([]dto.AchievementResponse, error) {
	principal, err := s.userRepo.GetUserByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	var mentorProfileID, menteeProfileID *int64
	switch principal.Role {
	case models.RoleMentor:
		profile, err := s.userRepo.GetMentorProfileByUserID(ctx, principalID)
		if err != nil {
			if errors.Is(err, repositories.ErrMentorProfileNotFound) {
				return nil, apperrors.ErrProfileNotFound
			}
			return nil, fmt.Errorf("failed to get mentor profile: %w", err)
		}
		mentorProfileID = &profile.ID
	case models.RoleMentee:
		profile, err := s.userRepo.GetMenteeProfileByUserID(ctx, principalID)
		if err != nil {
			if errors.Is(err, repositories.ErrMenteeProfileNotFound) {
				return nil, apperrors.ErrProfileNotFound
			}
			return nil, fmt.Errorf("failed to get mentee profile: %w", err)
		}
		menteeProfileID = &profile.ID
	}

	achievements, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := access.VisibleAchievements(principal, mentorProfileID, menteeProfileID, achievements)
	return dto.NewAchievementResponses(visible), nil
}

// Award records an achievement from the principal mentor to one of their
// mentees. Awarding to a mentee of another mentor is forbidden.
func (s *AchievementService) Award(ctx context.Context, mentorUserID int64, req *dto.AwardAchievementRequest) (*dto.AchievementResponse, error) {
	mentorProfile, err := s.userRepo.GetMentorProfileByUserID(ctx, mentorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get mentor profile: %w", err)
	}

	menteeUser, err := s.userRepo.GetUserByID(ctx, req.MenteeUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewValidationError("mentee user does not exist")
		}
		return nil, fmt.Errorf("failed to get mentee user: %w", err)
	}
	if menteeUser.Role != models.RoleMentee {
		return nil, apperrors.NewValidationError("user is not a mentee")
	}

	menteeProfile, err := s.userRepo.GetMenteeProfileByUserID(ctx, req.MenteeUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrMenteeProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get mentee profile: %w", err)
	}
	if menteeProfile.MentorProfileID == nil || *menteeProfile.MentorProfileID != mentorProfile.ID {
		return nil, apperrors.NewForbiddenError("mentee is not assigned to this mentor")
	}

	achievement := &models.Achievement{
		Name:            req.Name,
		Description:     req.Description,
		MentorProfileID: &mentorProfile.ID,
		MenteeProfileID: &menteeProfile.ID,
	}

	if _, err := s.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("achievementID", achievement.ID).Int64("menteeUserID", req.MenteeUserID).Msg("Achievement awarded")

	resp := dto.NewAchievementResponse(achievement)
	return &resp, nil
}
