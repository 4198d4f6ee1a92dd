package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/pkg/logger"
)

var ErrMenteeProfileNotFound = errors.New("mentee profile not found")

// MenteeRepository handles mentee profile database operations
type MenteeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMenteeRepository creates a new MenteeRepository
func NewMenteeRepository(db *pgxpool.Pool) *MenteeRepository {
	return &MenteeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const menteeColumns = "id, user_id, mentor_profile_id, course, year, attendance, academic_note, upcoming_event, alternate_contact"

func scanMenteeProfile(row pgx.Row) (*models.MenteeProfile, error) {
	var profile models.MenteeProfile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.MentorProfileID, &profile.Course, &profile.Year,
		&profile.Attendance, &profile.AcademicNote, &profile.UpcomingEvent, &profile.AlternateContact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenteeProfileNotFound
		}
		return nil, fmt.Errorf("error scanning mentee profile row: %w", err)
	}
	return &profile, nil
}

// CreateProfileTx inserts a mentee profile inside an existing transaction.
func (r *MenteeRepository) CreateProfileTx(ctx context.Context, tx pgx.Tx, profile *models.MenteeProfile) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO mentee_profiles (user_id, mentor_profile_id, course, year, attendance, academic_note, upcoming_event, alternate_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		profile.UserID, profile.MentorProfileID, profile.Course, profile.Year,
		profile.Attendance, profile.AcademicNote, profile.UpcomingEvent, profile.AlternateContact,
	).Scan(&profile.ID)

	if err != nil {
		return fmt.Errorf("error creating mentee profile: %w", err)
	}

	return nil
}

// GetProfileByUserID retrieves a mentee profile by user ID
func (r *MenteeRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.MenteeProfile, error) {
	sql, args, err := r.sb.Select(menteeColumns).
		From("mentee_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get mentee profile SQL")
		return nil, fmt.Errorf("failed to build get mentee profile query: %w", err)
	}

	return scanMenteeProfile(r.db.QueryRow(ctx, sql, args...))
}

// GetProfilesByMentorProfileID retrieves all mentee profiles linked to a mentor profile
func (r *MenteeRepository) GetProfilesByMentorProfileID(ctx context.Context, mentorProfileID int64) ([]*models.MenteeProfile, error) {
	sql, args, err := r.sb.Select(menteeColumns).
		From("mentee_profiles").
		Where(squirrel.Eq{"mentor_profile_id": mentorProfileID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list mentees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing mentee profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.MenteeProfile
	for rows.Next() {
		profile, err := scanMenteeProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentee profile rows: %w", err)
	}

	return profiles, nil
}

// GetAllProfiles retrieves every mentee profile keyed by user ID
func (r *MenteeRepository) GetAllProfiles(ctx context.Context) (map[int64]*models.MenteeProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+menteeColumns+`
		FROM mentee_profiles`)
	if err != nil {
		return nil, fmt.Errorf("error listing mentee profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[int64]*models.MenteeProfile)
	for rows.Next() {
		profile, err := scanMenteeProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles[profile.UserID] = profile
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentee profile rows: %w", err)
	}

	return profiles, nil
}

// AssignMentor sets (or clears, with nil) the mentor link of a mentee profile
func (r *MenteeRepository) AssignMentor(ctx context.Context, menteeProfileID int64, mentorProfileID *int64) error {
	sql, args, err := r.sb.Update("mentee_profiles").
		Set("mentor_profile_id", mentorProfileID).
		Where(squirrel.Eq{"id": menteeProfileID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build assign mentor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error assigning mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrMenteeProfileNotFound
	}

	return nil
}

// UpdateProfile updates a mentee profile's attributes
func (r *MenteeRepository) UpdateProfile(ctx context.Context, profile *models.MenteeProfile) error {
	sql, args, err := r.sb.Update("mentee_profiles").
		Set("course", profile.Course).
		Set("year", profile.Year).
		Set("attendance", profile.Attendance).
		Set("academic_note", profile.AcademicNote).
		Set("upcoming_event", profile.UpcomingEvent).
		Set("alternate_contact", profile.AlternateContact).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update mentee profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating mentee profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrMenteeProfileNotFound
	}

	return nil
}
