package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/app/repositories"
	"github.com/campushq/mentorhub/internal/pkg/apperrors"
	"github.com/campushq/mentorhub/internal/pkg/validation"
)

// ProfileService resolves a user's role-specific profile. Every user has
// exactly one profile row for their role; a missing row is reported as
// ErrProfileNotFound, never silently skipped.
type ProfileService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo *repositories.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the role-tagged profile payload for a user
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}

	resp := &dto.ProfileResponse{
		User: dto.NewUserResponse(user),
		Role: string(user.Role),
	}

	switch user.Role {
	case models.RoleAdmin:
		profile, err := s.userRepo.GetAdminProfileByUserID(ctx, userID)
		if err != nil {
			return nil, s.profileError(err, user, repositories.ErrAdminProfileNotFound)
		}
		resp.Admin = &dto.AdminProfileData{
			ID:         profile.ID,
			Privileges: profile.Privileges,
		}

	case models.RoleMentor:
		profile, err := s.userRepo.GetMentorProfileByUserID(ctx, userID)
		if err != nil {
			return nil, s.profileError(err, user, repositories.ErrMentorProfileNotFound)
		}
		resp.Mentor = dto.NewMentorProfileData(profile)

	case models.RoleMentee:
		profile, err := s.userRepo.GetMenteeProfileByUserID(ctx, userID)
		if err != nil {
			return nil, s.profileError(err, user, repositories.ErrMenteeProfileNotFound)
		}
		mentee, err := s.resolveMenteeData(ctx, profile)
		if err != nil {
			return nil, err
		}
		resp.Mentee = mentee

	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", user.Role))
	}

	return resp, nil
}

// UpdateProfile updates a user's name fields and, for mentors and mentees,
// any role-specific profile fields carried by the request.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	nameRule := func(value string) bool {
		return validation.NewStringValidation(value).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate()
	}
	if !nameRule(req.FirstName) {
		return nil, apperrors.NewValidationError("first name must be between 2 and 100 characters")
	}
	if !nameRule(req.LastName) {
		return nil, apperrors.NewValidationError("last name must be between 2 and 100 characters")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.FirstName, req.LastName); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	switch user.Role {
	case models.RoleMentor:
		if err := s.updateMentorFields(ctx, user, req); err != nil {
			return nil, err
		}
	case models.RoleMentee:
		if err := s.updateMenteeFields(ctx, user, req); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

func (s *ProfileService) updateMentorFields(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) error {
	if req.Room == nil && req.Department == nil && req.Background == nil && req.Position == nil && req.Timetable == nil {
		return nil
	}

	profile, err := s.userRepo.GetMentorProfileByUserID(ctx, user.ID)
	if err != nil {
		return s.profileError(err, user, repositories.ErrMentorProfileNotFound)
	}

	if req.Room != nil {
		profile.Room = *req.Room
	}
	if req.Department != nil {
		profile.Department = *req.Department
	}
	if req.Background != nil {
		profile.Background = *req.Background
	}
	if req.Position != nil {
		profile.Position = *req.Position
	}
	if req.Timetable != nil {
		profile.Timetable = *req.Timetable
	}

	if err := s.userRepo.UpdateMentorProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to update mentor profile: %w", err)
	}
	return nil
}

func (s *ProfileService) updateMenteeFields(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) error {
	if req.Course == nil && req.Year == nil && req.Attendance == nil &&
		req.AcademicNote == nil && req.UpcomingEvent == nil && req.AlternateContact == nil {
		return nil
	}

	if req.Year != nil && !validation.NewNumericValidation(*req.Year).WithMin(1).WithMax(8).Validate() {
		return apperrors.NewValidationError("year must be between 1 and 8")
	}
	if req.Attendance != nil && !validation.ValidAttendance(*req.Attendance) {
		return apperrors.NewValidationError("attendance must be between 0 and 100")
	}

	profile, err := s.userRepo.GetMenteeProfileByUserID(ctx, user.ID)
	if err != nil {
		return s.profileError(err, user, repositories.ErrMenteeProfileNotFound)
	}

	if req.Course != nil {
		profile.Course = *req.Course
	}
	if req.Year != nil {
		profile.Year = *req.Year
	}
	if req.Attendance != nil {
		profile.Attendance = *req.Attendance
	}
	if req.AcademicNote != nil {
		profile.AcademicNote = *req.AcademicNote
	}
	if req.UpcomingEvent != nil {
		profile.UpcomingEvent = *req.UpcomingEvent
	}
	if req.AlternateContact != nil {
		profile.AlternateContact = *req.AlternateContact
	}

	if err := s.userRepo.UpdateMenteeProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to update mentee profile: %w", err)
	}
	return nil
}

// resolveMenteeData maps a mentee profile and recursively resolves the
// assigned mentor. An unset mentor link yields a nil Mentor, not an error.
func (s *ProfileService) resolveMenteeData(ctx context.Context, profile *models.MenteeProfile) (*dto.MenteeProfileData, error) {
	data := dto.NewMenteeProfileData(profile)

	if profile.MentorProfileID == nil {
		return data, nil
	}

	mentorProfile, err := s.userRepo.GetMentorProfileByID(ctx, *profile.MentorProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorProfileNotFound) {
			// Dangling link is a data integrity fault, not an unset mentor.
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to resolve mentor profile: %w", err)
	}
	data.Mentor = dto.NewMentorProfileData(mentorProfile)

	mentorUser, err := s.userRepo.GetUserByID(ctx, mentorProfile.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mentor user: %w", err)
	}
	mu := dto.NewUserResponse(mentorUser)
	data.MentorUser = &mu

	return data, nil
}

func (s *ProfileService) profileError(err error, user *models.User, notFound error) error {
	if errors.Is(err, notFound) {
		s.logger.Error().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User has no profile row for their role")
		return apperrors.ErrProfileNotFound
	}
	return fmt.Errorf("failed to get %s profile: %w", user.Role, err)
}
