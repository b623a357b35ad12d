package auth

import (
	"context"
	"errors"
	"time"

	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/metrics"
	"AIChatbot_Backend/internal/models"
	"AIChatbot_Backend/internal/storage"

	"github.com/google/uuid"
)

// SessionTTL is fixed and not configurable.
const SessionTTL = 24 * time.Hour

type SessionRepository interface {
	Create(ctx context.Context, s models.Session) (models.Session, error)
	FindByToken(ctx context.Context, token string) (models.Session, error)
	DeleteByToken(ctx context.Context, token string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type UserFinder interface {
	ByID(ctx context.Context, id int64) (models.User, error)
}

// SessionManager issues and checks opaque session tokens. Expiry is fixed at
// issue time and never extended.
type SessionManager struct {
	sessions SessionRepository
	users    UserFinder
	now      func() time.Time
	newToken func() (string, error)
}

type SessionOption func(*SessionManager)

func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) { m.now = now }
}

func WithTokenGenerator(gen func() (string, error)) SessionOption {
	return func(m *SessionManager) { m.newToken = gen }
}

func NewSessionManager(sessions SessionRepository, users UserFinder, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		sessions: sessions,
		users:    users,
		now:      time.Now,
		newToken: randomToken,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// uuid.NewRandom reads from crypto/rand
func randomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (m *SessionManager) Issue(ctx context.Context, userID int64) (models.Session, error) {
	token, err := m.newToken()
	if err != nil {
		return models.Session{}, err
	}
	now := m.now()
	sess, err := m.sessions.Create(ctx, models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	})
	if err != nil {
		return models.Session{}, err
	}
	metrics.SessionsIssued.Inc()
	return sess, nil
}

// Validate reports whether token names a live session. Any failure, including
// a storage error, yields false.
func (m *SessionManager) Validate(ctx context.Context, token string) bool {
	_, ok := m.lookup(ctx, token)
	return ok
}

// ResolveUser returns the user bound to a live session.
func (m *SessionManager) ResolveUser(ctx context.Context, token string) (models.User, bool) {
	sess, ok := m.lookup(ctx, token)
	if !ok {
		return models.User{}, false
	}
	user, err := m.users.ByID(ctx, sess.UserID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logging.Error().Err(err).Int64("user_id", sess.UserID).Msg("ResolveUser(): user lookup failed")
		}
		return models.User{}, false
	}
	return user, true
}

func (m *SessionManager) lookup(ctx context.Context, token string) (models.Session, bool) {
	if token == "" {
		metrics.SessionValidations.WithLabelValues("missing").Inc()
		return models.Session{}, false
	}
	sess, err := m.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			metrics.SessionValidations.WithLabelValues("missing").Inc()
		} else {
			metrics.SessionValidations.WithLabelValues("error").Inc()
			logging.Error().Err(err).Msg("Validate(): session lookup failed")
		}
		return models.Session{}, false
	}
	if sess.ExpiredAt(m.now()) {
		metrics.SessionValidations.WithLabelValues("expired").Inc()
		return models.Session{}, false
	}
	metrics.SessionValidations.WithLabelValues("valid").Inc()
	return sess, true
}

// Revoke deletes the session and reports whether one existed. Revoking an
// unknown token is not an error.
func (m *SessionManager) Revoke(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return m.sessions.DeleteByToken(ctx, token)
}

func (m *SessionManager) SweepExpired(ctx context.Context) (int64, error) {
	n, err := m.sessions.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.SessionsSwept.Add(float64(n))
		logging.Debug().Int64("count", n).Msg("SweepExpired(): removed expired sessions")
	}
	return n, nil
}
