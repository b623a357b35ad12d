package auth

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"AIChatbot_Backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) (*AccountService, *sql.DB, *clock) {
	t.Helper()
	ctx := context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := storage.InitDB(ctx, "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	clk := &clock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	sm := NewSessionManager(storage.NewSessionStore(db), storage.NewUserStore(db), WithClock(clk.now))
	svc := NewAccountService(db, sm)
	svc.now = clk.now
	return svc, db, clk
}

func TestRegister_Success(t *testing.T) {
	svc, _, _ := newAccountService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: " alice ", Email: "Alice@Example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, defaultBio, u.Bio)
	assert.Contains(t, avatars, u.Avatar)
	assert.NotEqual(t, "pw", u.PasswordHash)
}

func TestRegister_Duplicates(t *testing.T) {
	svc, _, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "someone", Email: "alice@example.com", Password: "pw"})
	assert.ErrorIs(t, err, storage.ErrEmailExists)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "new@example.com", Password: "pw"})
	assert.ErrorIs(t, err, storage.ErrUsernameExists)

	n, err := svc.UserCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "row count unchanged")
}

func TestRegister_InvalidInput(t *testing.T) {
	svc, _, _ := newAccountService(t)
	ctx := context.Background()

	for _, in := range []RegisterInput{
		{Username: "", Email: "a@b.c", Password: "pw"},
		{Username: "a", Email: "", Password: "pw"},
		{Username: "a", Email: "a@b.c", Password: ""},
		{Username: "a", Email: "not-an-email", Password: "pw"},
	} {
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}
}

func TestRegister_PasswordLengthLimit(t *testing.T) {
	svc, db, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "long", Email: "long@example.com", Password: strings.Repeat("x", MaxPasswordBytes+8)})
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Zero(t, n)

	_, err = svc.Register(ctx, RegisterInput{Username: "edge", Email: "edge@example.com", Password: strings.Repeat("x", MaxPasswordBytes)})
	require.NoError(t, err)
}

func TestLogin_IssuesSessionAndSweeps(t *testing.T) {
	svc, db, clk := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	first, _, err := svc.Login(ctx, "bob@example.com", "pw")
	require.NoError(t, err)

	clk.advance(25 * time.Hour)
	second, user, err := svc.Login(ctx, "bob@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	require.NotNil(t, user.LastLogin)
	assert.NotEqual(t, first.Token, second.Token)

	_, err = storage.NewSessionStore(db).FindByToken(ctx, first.Token)
	assert.ErrorIs(t, err, storage.ErrNotFound, "expired session swept on login")
	assert.True(t, svc.sessions.Validate(ctx, second.Token))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "carol", Email: "carol@example.com", Password: "pw"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "carol@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	svc, _, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "dan", Email: "dan@example.com", Password: "pw"})
	require.NoError(t, err)
	sess, _, err := svc.Login(ctx, "dan@example.com", "pw")
	require.NoError(t, err)

	ok, err := svc.Logout(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, svc.sessions.Validate(ctx, sess.Token))

	ok, err = svc.Logout(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, ok)
}
