package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"AIChatbot_Backend/internal/models"
	"AIChatbot_Backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions is an in-memory SessionRepository.
type fakeSessions struct {
	mu      sync.Mutex
	rows    map[string]models.Session
	findErr error
	writes  int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[string]models.Session{}}
}

func (f *fakeSessions) Create(_ context.Context, s models.Session) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[s.Token]; ok {
		return models.Session{}, errors.New("UNIQUE constraint failed: sessions.token")
	}
	f.writes++
	s.ID = int64(len(f.rows) + 1)
	f.rows[s.Token] = s
	return s, nil
}

func (f *fakeSessions) FindByToken(_ context.Context, token string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return models.Session{}, f.findErr
	}
	s, ok := f.rows[token]
	if !ok {
		return models.Session{}, storage.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessions) DeleteByToken(_ context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[token]; !ok {
		return false, nil
	}
	f.writes++
	delete(f.rows, token)
	return true, nil
}

func (f *fakeSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for tok, s := range f.rows {
		if s.ExpiredAt(now) {
			delete(f.rows, tok)
			n++
		}
	}
	f.writes++
	return n, nil
}

type fakeUsers map[int64]models.User

func (f fakeUsers) ByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newManager(t *testing.T) (*SessionManager, *fakeSessions, *clock) {
	t.Helper()
	repo := newFakeSessions()
	clk := &clock{t: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
	users := fakeUsers{7: {ID: 7, Username: "alice", Email: "alice@example.com"}}
	return NewSessionManager(repo, users, WithClock(clk.now)), repo, clk
}

func TestValidate_NeverIssuedToken(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	assert.False(t, m.Validate(ctx, ""))
	assert.False(t, m.Validate(ctx, "not-a-token"))
	assert.False(t, m.Validate(ctx, "00000000-0000-0000-0000-000000000000"))
}

func TestIssue_ValidUntilExpiry(t *testing.T) {
	m, repo, clk := newManager(t)
	ctx := context.Background()

	sess, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, clk.t.Add(24*time.Hour), sess.ExpiresAt)
	assert.Equal(t, 24*time.Hour, SessionTTL)

	clk.advance(23*time.Hour + 59*time.Minute)
	assert.True(t, m.Validate(ctx, sess.Token))

	writes := repo.writes
	clk.advance(2 * time.Minute)
	assert.False(t, m.Validate(ctx, sess.Token), "expired after 24h")
	assert.Equal(t, writes, repo.writes, "validation performs no writes")
	assert.Equal(t, sess.ExpiresAt, repo.rows[sess.Token].ExpiresAt, "expiry is not extended")
}

func TestIssue_UniqueTokens(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	a, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	b, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
	assert.True(t, m.Validate(ctx, a.Token))
	assert.True(t, m.Validate(ctx, b.Token))
}

func TestIssue_TokenGeneratorFailure(t *testing.T) {
	repo := newFakeSessions()
	m := NewSessionManager(repo, fakeUsers{}, WithTokenGenerator(func() (string, error) {
		return "", errors.New("entropy exhausted")
	}))
	_, err := m.Issue(context.Background(), 1)
	assert.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestValidate_FailsClosedOnStorageError(t *testing.T) {
	m, repo, _ := newManager(t)
	ctx := context.Background()

	sess, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	repo.findErr = errors.New("database is locked")
	assert.False(t, m.Validate(ctx, sess.Token))
	_, ok := m.ResolveUser(ctx, sess.Token)
	assert.False(t, ok)
}

func TestResolveUser(t *testing.T) {
	m, _, clk := newManager(t)
	ctx := context.Background()

	sess, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	u, ok := m.ResolveUser(ctx, sess.Token)
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	orphan, err := m.Issue(ctx, 99)
	require.NoError(t, err)
	_, ok = m.ResolveUser(ctx, orphan.Token)
	assert.False(t, ok, "session for a missing user resolves to nothing")

	clk.advance(25 * time.Hour)
	_, ok = m.ResolveUser(ctx, sess.Token)
	assert.False(t, ok)
}

func TestRevoke_Idempotent(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	sess, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	existed, err := m.Revoke(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.False(t, m.Validate(ctx, sess.Token))

	existed, err = m.Revoke(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, existed)

	existed, err = m.Revoke(ctx, "")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSweepExpired(t *testing.T) {
	m, repo, clk := newManager(t)
	ctx := context.Background()

	old, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	clk.advance(12 * time.Hour)
	fresh, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	clk.advance(13 * time.Hour)
	n, err := m.SweepExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.NotContains(t, repo.rows, old.Token)
	assert.True(t, m.Validate(ctx, fresh.Token))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
