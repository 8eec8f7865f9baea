package repository

import (
	"context"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// Session is a login session store. GetSession returns domain.ErrSessionNotFound
// for unknown or expired tokens.
type Session interface {
	SaveSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
