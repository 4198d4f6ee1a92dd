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

// MeetingRepository handles meeting database operations
type MeetingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const meetingColumns = "id, mentor_id, mentee_id, title, description, scheduled_at, duration, status, created_at, updated_at"

func scanMeeting(row pgx.Row) (*models.Meeting, error) {
	var m models.Meeting
	err := row.Scan(
		&m.ID, &m.MentorID, &m.MenteeID, &m.Title, &m.Description,
		&m.ScheduledAt, &m.Duration, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("error scanning meeting row: %w", err)
	}
	return &m, nil
}

// Create inserts a new meeting
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting) (int64, error) {
	query := `
		INSERT INTO meetings (
			mentor_id, mentee_id, title, description, scheduled_at, duration, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	var id int64
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, query,
		meeting.MentorID,
		meeting.MenteeID,
		meeting.Title,
		meeting.Description,
		meeting.ScheduledAt,
		meeting.Duration,
		meeting.Status,
	).Scan(&id, &createdAt, &updatedAt)

	if err != nil {
		logger.Error().Err(err).Int64("mentorID", meeting.MentorID).Int64("menteeID", meeting.MenteeID).Msg("Error creating meeting")
		return 0, fmt.Errorf("error creating meeting: %w", err)
	}

	meeting.ID = id
	meeting.CreatedAt = createdAt
	meeting.UpdatedAt = updatedAt

	return id, nil
}

// GetByID retrieves a meeting by its ID
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	sql, args, err := r.sb.Select(meetingColumns).
		From("meetings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get meeting query: %w", err)
	}

	return scanMeeting(r.db.QueryRow(ctx, sql, args...))
}

// GetByParticipant retrieves the meetings where the user is mentor or
// mentee, optionally filtered by status, newest scheduled first.
func (r *MeetingRepository) GetByParticipant(ctx context.Context, userID int64, status models.MeetingStatus) ([]*models.Meeting, error) {
	builder := r.sb.Select(meetingColumns).
		From("meetings").
		Where(squirrel.Or{
			squirrel.Eq{"mentor_id": userID},
			squirrel.Eq{"mentee_id": userID},
		}).
		OrderBy("scheduled_at DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list meetings query: %w", err)
	}

	return r.queryMeetings(ctx, sql, args)
}

// GetUpcomingByMentor retrieves a mentor's pending future meetings,
// soonest first, capped at limit.
func (r *MeetingRepository) GetUpcomingByMentor(ctx context.Context, mentorID int64, limit uint64) ([]*models.Meeting, error) {
	sql, args, err := r.sb.Select(meetingColumns).
		From("meetings").
		Where(squirrel.Eq{"mentor_id": mentorID, "status": models.MeetingStatusPending}).
		Where(squirrel.Gt{"scheduled_at": time.Now()}).
		OrderBy("scheduled_at ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming meetings query: %w", err)
	}

	return r.queryMeetings(ctx, sql, args)
}

// CountUpcomingByMentor counts a mentor's pending future meetings
func (r *MeetingRepository) CountUpcomingByMentor(ctx context.Context, mentorID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM meetings
		WHERE mentor_id = $1 AND status = $2 AND scheduled_at > NOW()`,
		mentorID, models.MeetingStatusPending).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting upcoming meetings: %w", err)
	}

	return count, nil
}

// CountAll counts every meeting
func (r *MeetingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM meetings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting meetings: %w", err)
	}
	return count, nil
}

// UpdateStatus sets a meeting's status
func (r *MeetingRepository) UpdateStatus(ctx context.Context, id int64, status models.MeetingStatus) error {
	sql, args, err := r.sb.Update("meetings").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update meeting status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("meetingID", id).Msg("Error updating meeting status")
		return fmt.Errorf("error updating meeting status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

func (r *MeetingRepository) queryMeetings(ctx context.Context, sql string, args []interface{}) ([]*models.Meeting, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meeting rows: %w", err)
	}

	return meetings, nil
}
