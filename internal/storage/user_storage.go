package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"AIChatbot_Backend/internal/models"

	"modernc.org/sqlite"
)

type UserStore struct {
	db DBTX
}

func NewUserStore(db DBTX) *UserStore {
	return &UserStore{db: db}
}

const userColumns = "id, username, email, password_hash, avatar, bio, created_at, last_login, message_count"

func (s *UserStore) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users(username, email, password_hash, avatar, bio, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		u.Username, u.Email, u.PasswordHash, u.Avatar, u.Bio, toMillis(u.CreatedAt))
	if err != nil {
		return models.User{}, mapUniqueViolation(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("UserStore.Create(): %w", err)
	}
	return models.User{
		ID:           id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Avatar:       u.Avatar,
		Bio:          u.Bio,
		CreatedAt:    fromMillis(toMillis(u.CreatedAt)),
	}, nil
}

// mapUniqueViolation turns sqlite code 2067 into the matching sentinel so a
// registration race still reports a conflict.
func mapUniqueViolation(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.email"):
			return ErrEmailExists
		case strings.Contains(msg, "users.username"):
			return ErrUsernameExists
		}
	}
	return err
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row)
}

func (s *UserStore) ByID(ctx context.Context, id int64) (models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "SELECT 1 FROM users WHERE email = ?", email)
}

func (s *UserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, "SELECT 1 FROM users WHERE username = ?", username)
}

func (s *UserStore) exists(ctx context.Context, query, arg string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserStore) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := s.db.ExecContext(ctx, "UPDATE users SET last_login = ? WHERE id = ?", toMillis(at), id)
	return err
}

func (s *UserStore) IncrementMessageCount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET message_count = message_count + 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		createdAt int64
		lastLogin sql.NullInt64
	)
	if err := row.Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash,
		&user.Avatar, &user.Bio,
		&createdAt, &lastLogin,
		&user.MessageCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	user.CreatedAt = fromMillis(createdAt)
	if lastLogin.Valid {
		t := fromMillis(lastLogin.Int64)
		user.LastLogin = &t
	}
	return user, nil
}
