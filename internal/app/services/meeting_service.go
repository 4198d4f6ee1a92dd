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

// MeetingService handles meeting scheduling and the status state machine
type MeetingService struct {
	meetingRepo *repositories.MeetingRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(
	meetingRepo *repositories.MeetingRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// List returns the meetings the principal is a party to, optionally
// filtered by status. Meeting visibility is strictly participant-based:
// a principal who is neither the mentor nor the mentee of a meeting never
// sees it, whatever their role.
func (s *MeetingService) List(ctx context.Context, principalID int64, status string) ([]dto.MeetingResponse, error) {
	statusFilter := models.MeetingStatus(status)
	if status != "" && !statusFilter.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown meeting status %q", status))
	}

	if _, err := s.userRepo.GetUserByID(ctx, principalID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	meetings, err := s.meetingRepo.GetByParticipant(ctx, principalID, statusFilter)
	if err != nil {
		return nil, err
	}
	return dto.NewMeetingResponses(access.VisibleMeetings(principalID, meetings)), nil
}

// Create schedules a meeting between the principal and the counterpart.
// One party must be a mentor and the other a mentee; the new meeting
// starts in the pending state.
func (s *MeetingService) Create(ctx context.Context, principalID int64, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	principal, err := s.userRepo.GetUserByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	counterpart, err := s.userRepo.GetUserByID(ctx, req.CounterpartID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewValidationError("counterpart user does not exist")
		}
		return nil, fmt.Errorf("failed to get counterpart: %w", err)
	}
	if !counterpart.IsActive {
		return nil, apperrors.NewValidationError("counterpart account is disabled")
	}

	var mentorID, menteeID int64
	switch {
	case principal.Role == models.RoleMentor && counterpart.Role == models.RoleMentee:
		mentorID, menteeID = principal.ID, counterpart.ID
	case principal.Role == models.RoleMentee && counterpart.Role == models.RoleMentor:
		mentorID, menteeID = counterpart.ID, principal.ID
	default:
		return nil, apperrors.NewValidationError("a meeting requires one mentor and one mentee")
	}

	if req.Duration <= 0 {
		return nil, apperrors.NewValidationError("duration must be positive")
	}

	meeting := &models.Meeting{
		MentorID:    mentorID,
		MenteeID:    menteeID,
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Duration:    req.Duration,
		Status:      models.MeetingStatusPending,
	}

	if _, err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("meetingID", meeting.ID).Int64("mentorID", mentorID).Int64("menteeID", menteeID).Msg("Meeting scheduled")

	resp := dto.NewMeetingResponse(meeting)
	return &resp, nil
}

// UpdateStatus applies a state transition to a meeting.
// Only the mentee party accepts or rejects a pending meeting; either party
// marks an accepted meeting completed. A meeting the principal is not party
// to is reported as not found.
func (s *MeetingService) UpdateStatus(ctx context.Context, principalID, meetingID int64, next models.MeetingStatus) (*dto.MeetingResponse, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown meeting status %q", next))
	}

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if !meeting.IsParticipant(principalID) {
		return nil, apperrors.ErrMeetingNotFound
	}

	if !meeting.Status.CanTransitionTo(next) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStateTransition,
			fmt.Sprintf("cannot move meeting from %s to %s", meeting.Status, next))
	}

	if !meeting.TransitionAllowedBy(principalID, next) {
		return nil, apperrors.NewForbiddenError("only the mentee can accept or reject a meeting")
	}

	if err := s.meetingRepo.UpdateStatus(ctx, meetingID, next); err != nil {
		return nil, err
	}
	meeting.Status = next

	s.logger.Info().Int64("meetingID", meetingID).Str("status", string(next)).Msg("Meeting status updated")

	resp := dto.NewMeetingResponse(meeting)
	return &resp, nil
}
