package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/pkg/apperrors"
	"github.com/campushq/mentorhub/internal/pkg/logger"
)

// AchievementRepository handles achievement database operations
type AchievementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const achievementColumns = "id, name, description, mentor_profile_id, mentee_profile_id, awarded_at"

func scanAchievement(row pgx.Row) (*models.Achievement, error) {
	var a models.Achievement
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.MentorProfileID, &a.MenteeProfileID, &a.AwardedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("error scanning achievement row: %w", err)
	}
	return &a, nil
}

// Create inserts a new achievement
func (r *AchievementRepository) Create(ctx context.Context, achievement *models.Achievement) (int64, error) {
	query := `
		INSERT INTO achievements (name, description, mentor_profile_id, mentee_profile_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, awarded_at
	`

	var id int64
	var awardedAt time.Time
	err := r.db.QueryRow(ctx, query,
		achievement.Name,
		achievement.Description,
		achievement.MentorProfileID,
		achievement.MenteeProfileID,
	).Scan(&id, &awardedAt)

	if err != nil {
		logger.Error().Err(err).Str("name", achievement.Name).Msg("Error creating achievement")
		return 0, fmt.Errorf("error creating achievement: %w", err)
	}

	achievement.ID = id
	achievement.AwardedAt = awardedAt

	return id, nil
}

// GetAll retrieves every achievement, newest first
func (r *AchievementRepository) GetAll(ctx context.Context) ([]*models.Achievement, error) {
	sql, args, err := r.sb.Select(achievementColumns).
		From("achievements").
		OrderBy("awarded_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list achievements query: %w", err)
	}

	return r.queryAchievements(ctx, sql, args)
}

// GetByMentorProfileID retrieves the achievements awarded from a mentor
// profile, newest first, capped at limit when limit > 0.
func (r *AchievementRepository) GetByMentorProfileID(ctx context.Context, mentorProfileID int64, limit uint64) ([]*models.Achievement, error) {
	builder := r.sb.Select(achievementColumns).
		From("achievements").
		Where(squirrel.Eq{"mentor_profile_id": mentorProfileID}).
		OrderBy("awarded_at DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list achievements query: %w", err)
	}

	return r.queryAchievements(ctx, sql, args)
}

// CountAll counts every achievement
func (r *AchievementRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting achievements: %w", err)
	}
	return count, nil
}

func (r *AchievementRepository) queryAchievements(ctx context.Context, sql string, args []interface{}) ([]*models.Achievement, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*models.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievement rows: %w", err)
	}

	return achievements, nil
}
