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

// MessageRepository handles message database operations
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, is_read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	var id int64
	var createdAt time.Time
	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.IsRead,
	).Scan(&id, &createdAt)

	if err != nil {
		logger.Error().Err(err).Int64("senderID", message.SenderID).Int64("receiverID", message.ReceiverID).Msg("Error creating message")
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	message.ID = id
	message.CreatedAt = createdAt

	return id, nil
}

// GetByID retrieves a message by its ID
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	err := r.db.QueryRow(ctx, `
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE id = $1`,
		id).Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return &m, nil
}

// GetByParticipant retrieves the messages the user sent or received,
// newest first. Sender and receiver names are hydrated in one query.
func (r *MessageRepository) GetByParticipant(ctx context.Context, userID int64) ([]*models.Message, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.sender_id", "m.receiver_id", "m.content", "m.is_read", "m.created_at",
		"s.first_name", "s.last_name", "s.email", "s.role",
		"rc.first_name", "rc.last_name", "rc.email", "rc.role").
		From("messages m").
		Join("users s ON s.id = m.sender_id").
		Join("users rc ON rc.id = m.receiver_id").
		Where(squirrel.Or{
			squirrel.Eq{"m.sender_id": userID},
			squirrel.Eq{"m.receiver_id": userID},
		}).
		OrderBy("m.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		var sender, receiver models.User
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt,
			&sender.FirstName, &sender.LastName, &sender.Email, &sender.Role,
			&receiver.FirstName, &receiver.LastName, &receiver.Email, &receiver.Role)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		sender.ID = m.SenderID
		receiver.ID = m.ReceiverID
		m.Sender = &sender
		m.Receiver = &receiver
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// CountUnreadByReceiver counts a user's unread received messages
func (r *MessageRepository) CountUnreadByReceiver(ctx context.Context, receiverID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages
		WHERE receiver_id = $1 AND is_read = FALSE`,
		receiverID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}

	return count, nil
}

// CountAll counts every message
func (r *MessageRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting messages: %w", err)
	}
	return count, nil
}

// MarkRead flips a message's is_read flag
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}
