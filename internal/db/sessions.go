package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type sessionRow struct {
	ID         string `db:"id"`
	Username   string `db:"username"`
	APIToken   string `db:"api_token"`
	CreatedAt  string `db:"created_at"`
	LastSeenAt string `db:"last_seen_at"`
}

func (r sessionRow) session() Session {
	created, _ := time.Parse(time.RFC3339, r.CreatedAt)
	seen, _ := time.Parse(time.RFC3339, r.LastSeenAt)
	return Session{
		ID:         r.ID,
		Username:   r.Username,
		APIToken:   r.APIToken,
		CreatedAt:  created,
		LastSeenAt: seen,
	}
}

// start a new session for username, returning it with its fresh ID
func (s *Store) CreateSession(ctx context.Context, username, apiToken string) (Session, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	row := sessionRow{
		ID:         uuid.NewString(),
		Username:   username,
		APIToken:   apiToken,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if _, err := s.db.NamedExecContext(ctx, `
		INSERT INTO sessions (id, username, api_token, created_at, last_seen_at)
		VALUES (:id, :username, :api_token, :created_at, :last_seen_at)
	`, row); err != nil {
		return Session{}, err
	}
	return row.session(), nil
}

// find a session by its ID; sql.ErrNoRows when there is none
func (s *Store) SessionByID(ctx context.Context, id string) (Session, error) {
	var row sessionRow
	if err := s.db.GetContext(ctx, &row, `
		SELECT id, username, api_token, created_at, last_seen_at
		FROM sessions
		WHERE id = ?
	`, id); err != nil {
		return Session{}, err
	}
	return row.session(), nil
}

func (s *Store) TouchSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET last_seen_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), id)
	return err
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// delete sessions idle since before cutoff
func (s *Store) PruneSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE last_seen_at < ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
