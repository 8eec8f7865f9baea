package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/CharacterCreator_Go/internal/config"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
	"github.com/osse101/CharacterCreator_Go/internal/session"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewSessionStore picks the session backend named by SESSION_STORE. The
// returned closer releases the backend's connections.
func NewSessionStore(ctx context.Context, cfg *config.Config, pgStore repository.Session) (repository.Session, io.Closer, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		slog.Info(LogMsgSessionStoreReady, "store", cfg.SessionStore, "size", cfg.SessionCacheSize)
		return session.NewMemoryStore(cfg.SessionCacheSize, cfg.SessionTTL), nopCloser{}, nil

	case config.SessionStorePostgres:
		slog.Info(LogMsgSessionStoreReady, "store", cfg.SessionStore)
		return pgStore, nopCloser{}, nil

	case config.SessionStoreRedis:
		store, err := session.NewRedisStore(ctx, session.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRedis, err)
		}
		slog.Info(LogMsgSessionStoreReady, "store", cfg.SessionStore, "addr", cfg.RedisAddr)
		return store, store, nil

	default:
		return nil, nil, fmt.Errorf(ErrMsgUnknownStore, cfg.SessionStore)
	}
}
