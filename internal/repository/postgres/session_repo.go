package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventboard/internal/domain"
)

type sessionRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewSessionRepository returns a SessionStore over the session_values table.
func NewSessionRepository(db *sql.DB) domain.SessionStore {
	return &sessionRepository{
		DB:  db,
		now: time.Now,
	}
}

func (r *sessionRepository) Get(ctx context.Context, sessionID, key string) (string, error) {
	query := `
		SELECT value
		FROM session_values
		WHERE session_id = $1 AND key = $2
	`
	var value string
	err := r.DB.QueryRowContext(ctx, query, sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *sessionRepository) Put(ctx context.Context, sessionID, key, value string) error {
	query := `
		INSERT INTO session_values (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, sessionID, key, value, r.now().UTC())
	return err
}
