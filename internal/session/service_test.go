package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPurpose: Validates the session lifecycle from creation to sign-out.
// Scope: Unit Test
// Expected: Created sessions resolve through the provider; SignOut removes them.
// Test Case ID: SES-01
func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), time.Hour, 30*time.Minute)

	sess, err := svc.Create(ctx, "", "user-1", " Owner@Ruoom.KR ", "127.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "owner@ruoom.kr", sess.Email)

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	reqCtx := WithSession(ctx, got)
	user, ok := svc.CurrentUser(reqCtx)
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, sess.ID, user.SessionID)

	require.NoError(t, svc.SignOut(reqCtx))
	_, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_CurrentUserWithoutSession(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour, 0)
	_, ok := svc.CurrentUser(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, svc.SignOut(context.Background()), ErrSessionNotFound)
}

func TestSession_CreateRequiresUser(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour, 0)
	_, err := svc.Create(context.Background(), "", "", "a@b.kr", "", "")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

// TestPurpose: Validates that expired and idle sessions are rejected and removed.
// Scope: Unit Test
// Security: Session expiry enforcement
// Expected: Get returns ErrSessionExpired and the session no longer exists afterwards.
// Test Case ID: SES-02
func TestSession_ExpiredAndIdle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, time.Hour, 30*time.Minute)

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &Session{ID: "expired", UserID: "u", ExpiresAt: now.Add(-time.Minute), LastSeenAt: now}))
	require.NoError(t, repo.Create(ctx, &Session{ID: "idle", UserID: "u", ExpiresAt: now.Add(time.Hour), LastSeenAt: now.Add(-time.Hour)}))

	for _, id := range []string{"expired", "idle"} {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrSessionExpired, id)
		_, err = repo.Get(ctx, id)
		assert.ErrorIs(t, err, ErrSessionNotFound, id)
	}
}

func TestSession_Refresh(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, time.Hour, 30*time.Minute)

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &Session{ID: "s", UserID: "u", ExpiresAt: now.Add(time.Hour), LastSeenAt: now.Add(-10 * time.Minute)}))
	require.NoError(t, svc.Refresh(ctx, "s"))

	got, err := repo.Get(ctx, "s")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.LastSeenAt, time.Second)
}

func TestSession_CleanupExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, time.Hour, 0)

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &Session{ID: "old", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &Session{ID: "live", ExpiresAt: now.Add(time.Hour)}))

	n, err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestSession_Live(t *testing.T) {
	now := time.Now()
	sess := &Session{ExpiresAt: now.Add(time.Hour), LastSeenAt: now.Add(-10 * time.Minute)}

	assert.True(t, sess.Live(now, 30*time.Minute))
	assert.False(t, sess.Live(now, 5*time.Minute), "idle past the timeout")
	assert.True(t, sess.Live(now, 0), "zero idle timeout disables the idle check")
	assert.False(t, sess.Live(now.Add(2*time.Hour), 0), "absolute expiry always applies")
}
