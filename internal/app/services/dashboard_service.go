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
)

const dashboardTopN = 5

// DashboardService assembles the mentor and admin dashboard aggregates
type DashboardService struct {
	userRepo        *repositories.UserRepository
	meetingRepo     *repositories.MeetingRepository
	messageRepo     *repositories.MessageRepository
	achievementRepo *repositories.AchievementRepository
	logger          zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo *repositories.UserRepository,
	meetingRepo *repositories.MeetingRepository,
	messageRepo *repositories.MessageRepository,
	achievementRepo *repositories.AchievementRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		meetingRepo:     meetingRepo,
		messageRepo:     messageRepo,
		achievementRepo: achievementRepo,
		logger:          logger,
	}
}

// MentorDashboard assembles the composite mentor view: profile, mentees,
// pending upcoming meetings (soonest first, top 5), unread message count
// and recent achievements (newest first, top 5), plus the stats block.
func (s *DashboardService) MentorDashboard(ctx context.Context, mentorUserID int64) (*dto.MentorDashboardResponse, error) {
	profile, err := s.userRepo.GetMentorProfileByUserID(ctx, mentorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get mentor profile: %w", err)
	}

	menteeProfiles, err := s.userRepo.GetMenteesByMentorProfileID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentees: %w", err)
	}

	upcoming, err := s.meetingRepo.GetUpcomingByMentor(ctx, mentorUserID, dashboardTopN)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming meetings: %w", err)
	}
	upcomingCount, err := s.meetingRepo.CountUpcomingByMentor(ctx, mentorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming meetings: %w", err)
	}

	unread, err := s.messageRepo.CountUnreadByReceiver(ctx, mentorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	recent, err := s.achievementRepo.GetByMentorProfileID(ctx, profile.ID, dashboardTopN)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent achievements: %w", err)
	}

	mentees := make([]dto.MenteeProfileData, 0, len(menteeProfiles))
	for _, mp := range menteeProfiles {
		mentees = append(mentees, *dto.NewMenteeProfileData(mp))
	}

	return &dto.MentorDashboardResponse{
		Profile:            dto.NewMentorProfileData(profile),
		Mentees:            mentees,
		UpcomingMeetings:   dto.NewMeetingResponses(upcoming),
		UnreadMessages:     unread,
		RecentAchievements: dto.NewAchievementResponses(recent),
		Stats: dto.DashboardStats{
			TotalMentees:       int64(len(menteeProfiles)),
			UnreadMessages:     unread,
			UpcomingMeetings:   upcomingCount,
			RecentAchievements: int64(len(recent)),
		},
	}, nil
}

// AdminDashboard assembles system-wide totals and the most recent users
func (s *DashboardService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	totalUsers, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalMentors, err := s.userRepo.CountUsersByRole(ctx, models.RoleMentor)
	if err != nil {
		return nil, err
	}
	totalMentees, err := s.userRepo.CountUsersByRole(ctx, models.RoleMentee)
	if err != nil {
		return nil, err
	}
	totalMeetings, err := s.meetingRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalAchievements, err := s.achievementRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalMessages, err := s.messageRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) > dashboardTopN {
		users = users[:dashboardTopN]
	}

	return &dto.AdminDashboardResponse{
		TotalUsers:        totalUsers,
		TotalMentors:      totalMentors,
		TotalMentees:      totalMentees,
		TotalMeetings:     totalMeetings,
		TotalAchievements: totalAchievements,
		TotalMessages:     totalMessages,
		RecentUsers:       dto.NewUserResponses(users),
	}, nil
}
