package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"AIChatbot_Backend/internal/models"
)

type SessionStore struct {
	db DBTX
}

func NewSessionStore(db DBTX) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, sess models.Session) (models.Session, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions(token, user_id, created_at, expires_at) VALUES(?, ?, ?, ?)",
		sess.Token, sess.UserID, toMillis(sess.CreatedAt), toMillis(sess.ExpiresAt))
	if err != nil {
		return models.Session{}, fmt.Errorf("SessionStore.Create(): %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Session{}, fmt.Errorf("SessionStore.Create(): %w", err)
	}
	sess.ID = id
	return sess, nil
}

func (s *SessionStore) FindByToken(ctx context.Context, token string) (models.Session, error) {
	var (
		sess                 models.Session
		createdAt, expiresAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, token, user_id, created_at, expires_at FROM sessions WHERE token = ?", token).
		Scan(&sess.ID, &sess.Token, &sess.UserID, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNotFound
		}
		return models.Session{}, err
	}
	sess.CreatedAt = fromMillis(createdAt)
	sess.ExpiresAt = fromMillis(expiresAt)
	return sess, nil
}

// DeleteByToken reports whether a row was removed.
func (s *SessionStore) DeleteByToken(ctx context.Context, token string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?", toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SessionStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
