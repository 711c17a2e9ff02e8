package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
	"github.com/devkip/clubhub/internal/pkg/dberrors"
	"github.com/devkip/clubhub/internal/pkg/logger"
)

// userColumns is the column list scanned into models.User
var userColumns = []string{
	"id", "email", "password", "name", "student_id", "google_id",
	"is_email_verified", "is_active", "last_login_at", "created_at", "updated_at",
}

// UserRepository handles account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.StudentID,
		&user.GoogleID,
		&user.IsEmailVerified,
		&user.IsActive,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and returns its assigned id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password", "name", "student_id", "google_id",
			"is_email_verified", "is_active", "created_at", "updated_at").
		Values(user.Email, user.Password, user.Name, user.StudentID, user.GoogleID,
			user.IsEmailVerified, user.IsActive, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return id, nil
}

// FindByID retrieves a user by id
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// FindByEmail retrieves a user by email (stored lowercase)
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where("LOWER(email) = LOWER(?)", email).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// FindByGoogleID retrieves a user by its Google account id
func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"google_id": googleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// EmailExists checks whether an account with the email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking if email exists: %w", err)
	}
	return exists, nil
}

// MarkEmailVerified marks the user's email as confirmed
func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Update("users").
		Set("is_email_verified", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build verify email query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking email verified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// IsEmailVerified reports whether the user's email is confirmed
func (r *UserRepository) IsEmailVerified(ctx context.Context, userID int64) (bool, error) {
	var verified bool
	err := r.db.QueryRow(ctx, `SELECT is_email_verified FROM users WHERE id = $1`, userID).Scan(&verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrUserNotFound
		}
		return false, fmt.Errorf("error checking email verification: %w", err)
	}
	return verified, nil
}

// UpdatePassword replaces the user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Update("users").
		Set("last_login_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// CountMembers counts active accounts, used by the public member counter
func (r *UserRepository) CountMembers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting members: %w", err)
	}
	return count, nil
}
