/**
* Name:        account.go
* Description: registration, login and logout over the user/session stores
* Workflow:    Register -> Login (issue + sweep) -> Logout (revoke)
 */
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/models"
	"AIChatbot_Backend/internal/storage"
)

var (
	ErrInvalidInput       = errors.New("username, email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidInput, MaxPasswordBytes)
)

const defaultBio = "Hello! I'm new here!"

var avatars = []string{"🤖", "👨‍💻", "👩‍💻", "🐱", "🚀", "🎯", "🔥", "⭐"}

type AccountService struct {
	db       *sql.DB
	users    *storage.UserStore
	sessions *SessionManager
	now      func() time.Time
}

func NewAccountService(db *sql.DB, sessions *SessionManager) *AccountService {
	return &AccountService{
		db:       db,
		users:    storage.NewUserStore(db),
		sessions: sessions,
		now:      time.Now,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a user. Existing email or username yields
// storage.ErrEmailExists / storage.ErrUsernameExists.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || in.Password == "" || !strings.Contains(email, "@") {
		return models.User{}, ErrInvalidInput
	}
	if len(in.Password) > MaxPasswordBytes {
		return models.User{}, ErrPasswordTooLong
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("Register(): failed to hash password: %w", err)
	}

	var created models.User
	err = storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		users := storage.NewUserStore(tx)
		if exists, err := users.EmailExists(ctx, email); err != nil {
			return err
		} else if exists {
			return storage.ErrEmailExists
		}
		if exists, err := users.UsernameExists(ctx, username); err != nil {
			return err
		} else if exists {
			return storage.ErrUsernameExists
		}
		created, err = users.Create(ctx, models.NewUser{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Avatar:       avatars[rand.IntN(len(avatars))],
			Bio:          defaultBio,
			CreatedAt:    s.now(),
		})
		return err
	})
	if err != nil {
		return models.User{}, err
	}
	logging.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("Register(): user created")
	return created, nil
}

// Login checks credentials and issues a session. A failed sweep of expired
// sessions is logged and does not fail the login.
func (s *AccountService) Login(ctx context.Context, email, password string) (models.Session, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.Session{}, models.User{}, ErrInvalidCredentials
	}

	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Session{}, models.User{}, ErrInvalidCredentials
		}
		return models.Session{}, models.User{}, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return models.Session{}, models.User{}, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		logging.Warn().Err(err).Int64("user_id", user.ID).Msg("Login(): failed to update last_login")
	} else {
		user.LastLogin = &now
	}

	sess, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return models.Session{}, models.User{}, fmt.Errorf("Login(): failed to issue session: %w", err)
	}

	if _, err := s.sessions.SweepExpired(ctx); err != nil {
		logging.Warn().Err(err).Msg("Login(): expired session sweep failed")
	}
	return sess, user, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Revoke(ctx, token)
}

func (s *AccountService) RecordMessage(ctx context.Context, userID int64) error {
	return s.users.IncrementMessageCount(ctx, userID)
}

func (s *AccountService) UserCount(ctx context.Context) (int64, error) {
	return storage.Ping(ctx, s.db)
}
