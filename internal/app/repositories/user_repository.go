package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/app/repositories/user"
	"github.com/campushq/mentorhub/internal/pkg/dberrors"
	"github.com/campushq/mentorhub/internal/pkg/logger"
)

// Sentinels from the user subpackage, re-exported for the service layer.
var (
	ErrUserNotFound          = user.ErrUserNotFound
	ErrEmailAlreadyExists    = user.ErrEmailAlreadyExists
	ErrAdminProfileNotFound  = user.ErrAdminProfileNotFound
	ErrMentorProfileNotFound = user.ErrMentorProfileNotFound
	ErrMenteeProfileNotFound = user.ErrMenteeProfileNotFound
)

// UserRepository combines the common user repository with the three
// role-profile repositories behind one facade.
type UserRepository struct {
	db     *pgxpool.Pool
	common *user.Repository
	admin  *user.AdminRepository
	mentor *user.MentorRepository
	mentee *user.MenteeRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db:     db,
		common: user.NewRepository(db),
		admin:  user.NewAdminRepository(db),
		mentor: user.NewMentorRepository(db),
		mentee: user.NewMenteeRepository(db),
	}
}

// CreateWithProfile creates the user row and its role profile in a single
// transaction. The profile argument must match the user's role:
// *models.AdminProfile, *models.MentorProfile or *models.MenteeProfile.
// On any failure neither row persists.
func (r *UserRepository) CreateWithProfile(ctx context.Context, u *models.User, profile interface{}) error {
	exists, err := r.common.EmailExists(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return user.ErrEmailAlreadyExists
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	id, err := r.common.CreateUserTx(ctx, tx, u)
	if err != nil {
		// The pre-check races with concurrent registrations; the unique
		// constraint is authoritative.
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return user.ErrEmailAlreadyExists
		}
		return err
	}
	u.ID = id

	switch p := profile.(type) {
	case *models.AdminProfile:
		p.UserID = id
		err = r.admin.CreateProfileTx(ctx, tx, p)
	case *models.MentorProfile:
		p.UserID = id
		err = r.mentor.CreateProfileTx(ctx, tx, p)
	case *models.MenteeProfile:
		p.UserID = id
		err = r.mentee.CreateProfileTx(ctx, tx, p)
	default:
		err = fmt.Errorf("unsupported profile type %T", profile)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Str("email", u.Email).Msg("Error committing registration transaction")
		return fmt.Errorf("error committing registration: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// GetAllUsers retrieves every user, most recent first
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return r.common.GetAllUsers(ctx)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// CountUsers counts every user
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.common.CountAll(ctx)
}

// CountUsersByRole counts users holding the given role
func (r *UserRepository) CountUsersByRole(ctx context.Context, role models.RoleType) (int64, error) {
	return r.common.CountByRole(ctx, role)
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	return r.common.UpdateLastLogin(ctx, userID)
}

// UpdateProfile updates a user's basic profile information
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) error {
	return r.common.UpdateUserProfile(ctx, userID, firstName, lastName)
}

// GetAdminProfileByUserID retrieves an admin profile by user ID
func (r *UserRepository) GetAdminProfileByUserID(ctx context.Context, userID int64) (*models.AdminProfile, error) {
	return r.admin.GetProfileByUserID(ctx, userID)
}

// GetMentorProfileByUserID retrieves a mentor profile by user ID
func (r *UserRepository) GetMentorProfileByUserID(ctx context.Context, userID int64) (*models.MentorProfile, error) {
	return r.mentor.GetProfileByUserID(ctx, userID)
}

// GetMentorProfileByID retrieves a mentor profile by its own ID
func (r *UserRepository) GetMentorProfileByID(ctx context.Context, id int64) (*models.MentorProfile, error) {
	return r.mentor.GetProfileByID(ctx, id)
}

// GetAllMentorProfiles retrieves every mentor profile keyed by user ID
func (r *UserRepository) GetAllMentorProfiles(ctx context.Context) (map[int64]*models.MentorProfile, error) {
	return r.mentor.GetAllProfiles(ctx)
}

// UpdateMentorProfile updates a mentor profile's attributes
func (r *UserRepository) UpdateMentorProfile(ctx context.Context, profile *models.MentorProfile) error {
	return r.mentor.UpdateProfile(ctx, profile)
}

// GetMenteeProfileByUserID retrieves a mentee profile by user ID
func (r *UserRepository) GetMenteeProfileByUserID(ctx context.Context, userID int64) (*models.MenteeProfile, error) {
	return r.mentee.GetProfileByUserID(ctx, userID)
}

// GetMenteesByMentorProfileID retrieves the mentee profiles linked to a mentor profile
func (r *UserRepository) GetMenteesByMentorProfileID(ctx context.Context, mentorProfileID int64) ([]*models.MenteeProfile, error) {
	return r.mentee.GetProfilesByMentorProfileID(ctx, mentorProfileID)
}

// GetAllMenteeProfiles retrieves every mentee profile keyed by user ID
func (r *UserRepository) GetAllMenteeProfiles(ctx context.Context) (map[int64]*models.MenteeProfile, error) {
	return r.mentee.GetAllProfiles(ctx)
}

// AssignMentor sets (or clears) the mentor link of a mentee profile
func (r *UserRepository) AssignMentor(ctx context.Context, menteeProfileID int64, mentorProfileID *int64) error {
	return r.mentee.AssignMentor(ctx, menteeProfileID, mentorProfileID)
}

// UpdateMenteeProfile updates a mentee profile's attributes
func (r *UserRepository) UpdateMenteeProfile(ctx context.Context, profile *models.MenteeProfile) error {
	return r.mentee.UpdateProfile(ctx, profile)
}
