package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

// PasswordResetTokenRepository manages password reset tokens
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetTokenRepository creates a new PasswordResetTokenRepository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: db}
}

// CreateToken stores a new password reset token
func (r *PasswordResetTokenRepository) CreateToken(ctx context.Context, userID int64, token string, expiryDate time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (user_id, token, expiry_date)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, userID, token, expiryDate); err != nil {
		return fmt.Errorf("error creating password reset token: %w", err)
	}

	return nil
}

// GetTokenInfo retrieves user id, expiry date and used flag for a token
func (r *PasswordResetTokenRepository) GetTokenInfo(ctx context.Context, token string) (int64, time.Time, bool, error) {
	query := `
		SELECT user_id, expiry_date, used
		FROM password_reset_tokens
		WHERE token = $1
	`

	var userID int64
	var expiryDate time.Time
	var used bool

	err := r.db.QueryRow(ctx, query, token).Scan(&userID, &expiryDate, &used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, false, apperrors.ErrTokenNotFound
		}
		return 0, time.Time{}, false, fmt.Errorf("error retrieving password reset token: %w", err)
	}

	return userID, expiryDate, used, nil
}

// MarkTokenAsUsed marks a token as used to prevent reuse
func (r *PasswordResetTokenRepository) MarkTokenAsUsed(ctx context.Context, token string) error {
	query := `
		UPDATE password_reset_tokens
		SET used = true
		WHERE token = $1
	`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("error marking password reset token as used: %w", err)
	}

	return nil
}

// DeleteExpiredTokens removes tokens past their expiry
func (r *PasswordResetTokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	query := `DELETE FROM password_reset_tokens WHERE expiry_date < $1`

	if _, err := r.db.Exec(ctx, query, time.Now()); err != nil {
		return fmt.Errorf("error deleting expired password reset tokens: %w", err)
	}

	return nil
}
