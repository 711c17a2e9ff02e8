package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

// RecordStore is the flat key/value store backing club content: blog posts,
// events, registrations, profiles and gallery photos. Values are JSON
// documents; key layout is defined in the models package.
type RecordStore interface {
	// Get returns the raw value at key, or apperrors.ErrResourceNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set upserts the value at key.
	Set(ctx context.Context, key string, value interface{}) error
	// SetIfAbsent writes only when the key does not exist yet and reports
	// whether this call created the record. The write itself is the
	// uniqueness gate, so concurrent callers cannot both win.
	SetIfAbsent(ctx context.Context, key string, value interface{}) (bool, error)
	// Delete removes the record at key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns the values of every record whose key starts with
	// prefix, in no particular order.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// RecordRepository implements RecordStore on a single Postgres table of
// (key text primary key, value jsonb)
type RecordRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get returns the raw JSON value stored at key
func (r *RecordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sql, args, err := r.sb.Select("value").
		From("records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var value []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error reading record %q: %w", key, err)
	}

	return value, nil
}

// Set upserts the value at key
func (r *RecordRepository) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling record %q: %w", key, err)
	}

	query := `
		INSERT INTO records (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.Exec(ctx, query, key, data, time.Now())
	if err != nil {
		return fmt.Errorf("error writing record %q: %w", key, err)
	}

	return nil
}

// SetIfAbsent inserts the value only when the key is free. The conflict
// clause makes the insert itself the uniqueness check, which closes the
// read-then-write race on registration creation.
func (r *RecordRepository) SetIfAbsent(ctx context.Context, key string, value interface{}) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("error marshaling record %q: %w", key, err)
	}

	query := `
		INSERT INTO records (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO NOTHING
	`

	cmdTag, err := r.db.Exec(ctx, query, key, data, time.Now())
	if err != nil {
		return false, fmt.Errorf("error writing record %q: %w", key, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes the record at key
func (r *RecordRepository) Delete(ctx context.Context, key string) error {
	sql, args, err := r.sb.Delete("records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting record %q: %w", key, err)
	}

	return nil
}

// GetByPrefix returns all values whose key starts with prefix
func (r *RecordRepository) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	sql, args, err := r.sb.Select("value").
		From("records").
		Where(squirrel.Like{"key": prefix + "%"}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error scanning records with prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		values = append(values, value)
	}

	return values, rows.Err()
}
