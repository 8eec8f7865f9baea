package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	var container testcontainers.Container
	var err error
	func() {
		// testcontainers panics when no Docker daemon is reachable
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("docker unavailable: %v", r)
			}
		}()
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
	}()
	if err != nil {
		t.Skipf("could not start redis container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}

func TestRedisStore(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := &domain.Session{
		Token:     "tok",
		UserID:    9,
		Username:  "bob",
		Roles:     []string{domain.RoleUser, domain.RoleAdmin},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.SaveSession(ctx, s))

	got, err := store.GetSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, s.Username, got.Username)
	assert.Equal(t, s.Roles, got.Roles)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))

	ttl, err := store.client.TTL(ctx, redisKey("tok")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Minute)

	require.NoError(t, store.DeleteSession(ctx, "tok"))
	_, err = store.GetSession(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	n, err := store.DeleteExpiredSessions(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisStore_SkipsAlreadyExpired(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.SaveSession(ctx, &domain.Session{Token: "gone", ExpiresAt: time.Now().Add(-time.Second)}))
	_, err = store.GetSession(ctx, "gone")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
