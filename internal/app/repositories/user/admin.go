package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/mentorhub/internal/app/models"
)

var ErrAdminProfileNotFound = errors.New("admin profile not found")

// AdminRepository handles admin profile database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProfileTx inserts an admin profile inside an existing transaction.
func (r *AdminRepository) CreateProfileTx(ctx context.Context, tx pgx.Tx, profile *models.AdminProfile) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO admin_profiles (user_id, privileges)
		VALUES ($1, $2)
		RETURNING id`,
		profile.UserID, profile.Privileges,
	).Scan(&profile.ID)

	if err != nil {
		return fmt.Errorf("error creating admin profile: %w", err)
	}

	return nil
}

// GetProfileByUserID retrieves an admin profile by user ID
func (r *AdminRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.AdminProfile, error) {
	var profile models.AdminProfile
	sql, args, err := r.sb.Select("id", "user_id", "privileges").
		From("admin_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get admin profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.UserID, &profile.Privileges)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving admin profile: %w", err)
	}

	return &profile, nil
}
