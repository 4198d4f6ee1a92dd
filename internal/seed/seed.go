package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushq/mentorhub/internal/app/models"
	appRepos "github.com/campushq/mentorhub/internal/app/repositories"
	pkgAuth "github.com/campushq/mentorhub/internal/pkg/auth"
)

// CreateDefaultData seeds a demo admin, mentor and mentee with a linked
// mentorship, plus a pending meeting, two unread messages and one
// achievement. Seeding is keyed on the user emails, so a second run
// against the same database is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	meetingRepo := appRepos.NewMeetingRepository(dbPool)
	messageRepo := appRepos.NewMessageRepository(dbPool)
	achievementRepo := appRepos.NewAchievementRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if _, err := seedUser(ctx, userRepo, &appModels.User{
		Email:     "bobjohnson@college.edu",
		FirstName: "Bob",
		LastName:  "Johnson",
		Role:      appModels.RoleAdmin,
		IsActive:  true,
	}, "admin123", &appModels.AdminProfile{Privileges: "full"}); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin user")
		finalErr = errors.Join(finalErr, err)
	}

	mentorID, err := seedUser(ctx, userRepo, &appModels.User{
		Email:     "johndoe@college.edu",
		FirstName: "John",
		LastName:  "Doe",
		Role:      appModels.RoleMentor,
		IsActive:  true,
	}, "mentor123", &appModels.MentorProfile{
		Room:       "Room 205",
		Department: "Computer Science",
		Background: "PhD in AI",
		Position:   "Professor",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding mentor user")
		finalErr = errors.Join(finalErr, err)
	}

	menteeID, err := seedUser(ctx, userRepo, &appModels.User{
		Email:     "alicesmith@college.edu",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      appModels.RoleMentee,
		IsActive:  true,
	}, "mentee123", &appModels.MenteeProfile{
		Course:        "B.Tech CSE",
		Year:          2,
		Attendance:    89.5,
		AcademicNote:  "Good",
		UpcomingEvent: "AI Workshop",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding mentee user")
		finalErr = errors.Join(finalErr, err)
	}

	// The remaining fixtures hang off the mentor/mentee pair; if either
	// failed (or existed already) there is nothing more to do.
	if mentorID == 0 || menteeID == 0 {
		return finalErr
	}

	mentorProfile, err := userRepo.GetMentorProfileByUserID(ctx, mentorID)
	if err != nil {
		lgr.Error().Err(err).Msg("Error loading seeded mentor profile")
		return errors.Join(finalErr, err)
	}
	menteeProfile, err := userRepo.GetMenteeProfileByUserID(ctx, menteeID)
	if err != nil {
		lgr.Error().Err(err).Msg("Error loading seeded mentee profile")
		return errors.Join(finalErr, err)
	}

	if err := userRepo.AssignMentor(ctx, menteeProfile.ID, &mentorProfile.ID); err != nil {
		lgr.Error().Err(err).Msg("Error linking seeded mentee to mentor")
		finalErr = errors.Join(finalErr, err)
	}

	meeting := &appModels.Meeting{
		MentorID:    mentorID,
		MenteeID:    menteeID,
		Title:       "Semester progress check-in",
		Description: "Review coursework progress and plan the next month",
		ScheduledAt: time.Now().Add(72 * time.Hour).Truncate(time.Minute),
		Duration:    30,
		Status:      appModels.MeetingStatusPending,
	}
	if _, err := meetingRepo.Create(ctx, meeting); err != nil {
		lgr.Error().Err(err).Msg("Error seeding meeting")
		finalErr = errors.Join(finalErr, err)
	}

	messages := []*appModels.Message{
		{SenderID: menteeID, ReceiverID: mentorID, Content: "Hello professor, could we meet this week to discuss my project?"},
		{SenderID: menteeID, ReceiverID: mentorID, Content: "I have also shared my draft report, please take a look when you can."},
	}
	for _, m := range messages {
		if _, err := messageRepo.Create(ctx, m); err != nil {
			lgr.Error().Err(err).Msg("Error seeding message")
			finalErr = errors.Join(finalErr, err)
		}
	}

	achievement := &appModels.Achievement{
		Name:            "Top Performer",
		Description:     "Best project presentation of the semester",
		MentorProfileID: &mentorProfile.ID,
		MenteeProfileID: &menteeProfile.ID,
	}
	if _, err := achievementRepo.Create(ctx, achievement); err != nil {
		lgr.Error().Err(err).Msg("Error seeding achievement")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data created.")
	return finalErr
}

// seedUser creates the user and its role profile unless the email is
// already taken. Returns the new user's ID, or 0 when the user existed.
func seedUser(ctx context.Context, userRepo *appRepos.UserRepository, u *appModels.User, password string, profile interface{}) (int64, error) {
	exists, err := userRepo.EmailExists(ctx, u.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking seed user %s: %w", u.Email, err)
	}
	if exists {
		return 0, nil
	}

	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing seed password for %s: %w", u.Email, err)
	}
	u.Password = hashed

	if err := userRepo.CreateWithProfile(ctx, u, profile); err != nil {
		return 0, fmt.Errorf("error creating seed user %s: %w", u.Email, err)
	}
	return u.ID, nil
}
