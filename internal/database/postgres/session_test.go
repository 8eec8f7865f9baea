package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func newTestSession(u *domain.User) *domain.Session {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Roles:     u.Roles,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionRepository(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(pool)
	u := newTestUser(t, pool)

	live := newTestSession(u)
	require.NoError(t, repo.SaveSession(ctx, live))

	got, err := repo.GetSession(ctx, live.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, []string{domain.RoleUser}, got.Roles)
	assert.True(t, live.ExpiresAt.Equal(got.ExpiresAt))

	expired := newTestSession(u)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.SaveSession(ctx, expired))

	_, err = repo.GetSession(ctx, expired.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	purged, err := repo.DeleteExpiredSessions(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	require.NoError(t, repo.DeleteSession(ctx, live.Token))
	require.NoError(t, repo.DeleteSession(ctx, live.Token))
	_, err = repo.GetSession(ctx, live.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_UnknownUser(t *testing.T) {
	pool := requireDB(t)
	s := newTestSession(&domain.User{ID: 123456, Username: "ghost"})
	assert.ErrorIs(t, NewSessionRepository(pool).SaveSession(context.Background(), s), domain.ErrUserNotFound)
}
