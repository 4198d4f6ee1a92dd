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

var ErrMentorProfileNotFound = errors.New("mentor profile not found")

// MentorRepository handles mentor profile database operations
type MentorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProfileTx inserts a mentor profile inside an existing transaction.
func (r *MentorRepository) CreateProfileTx(ctx context.Context, tx pgx.Tx, profile *models.MentorProfile) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO mentor_profiles (user_id, room, department, background, position, timetable)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		profile.UserID, profile.Room, profile.Department, profile.Background, profile.Position, profile.Timetable,
	).Scan(&profile.ID)

	if err != nil {
		return fmt.Errorf("error creating mentor profile: %w", err)
	}

	return nil
}

// GetProfileByUserID retrieves a mentor profile by user ID
func (r *MentorRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	sql, args, err := r.sb.Select("id", "user_id", "room", "department", "background", "position", "timetable").
		From("mentor_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get mentor profile SQL")
		return nil, fmt.Errorf("failed to build get mentor profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &profile.UserID, &profile.Room, &profile.Department,
		&profile.Background, &profile.Position, &profile.Timetable)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMentorProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning mentor profile row")
		return nil, fmt.Errorf("error retrieving mentor profile: %w", err)
	}

	return &profile, nil
}

// GetProfileByID retrieves a mentor profile by its own ID
func (r *MentorRepository) GetProfileByID(ctx context.Context, id int64) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	sql, args, err := r.sb.Select("id", "user_id", "room", "department", "background", "position", "timetable").
		From("mentor_profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get mentor profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &profile.UserID, &profile.Room, &profile.Department,
		&profile.Background, &profile.Position, &profile.Timetable)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMentorProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor profile: %w", err)
	}

	return &profile, nil
}

// GetAllProfiles retrieves every mentor profile keyed by user ID
func (r *MentorRepository) GetAllProfiles(ctx context.Context) (map[int64]*models.MentorProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, room, department, background, position, timetable
		FROM mentor_profiles`)
	if err != nil {
		return nil, fmt.Errorf("error listing mentor profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[int64]*models.MentorProfile)
	for rows.Next() {
		var profile models.MentorProfile
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.Room, &profile.Department,
			&profile.Background, &profile.Position, &profile.Timetable); err != nil {
			return nil, fmt.Errorf("error scanning mentor profile row: %w", err)
		}
		profiles[profile.UserID] = &profile
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor profile rows: %w", err)
	}

	return profiles, nil
}

// UpdateProfile updates a mentor profile's attributes
func (r *MentorRepository) UpdateProfile(ctx context.Context, profile *models.MentorProfile) error {
	sql, args, err := r.sb.Update("mentor_profiles").
		Set("room", profile.Room).
		Set("department", profile.Department).
		Set("background", profile.Background).
		Set("position", profile.Position).
		Set("timetable", profile.Timetable).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update mentor profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating mentor profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrMentorProfileNotFound
	}

	return nil
}
