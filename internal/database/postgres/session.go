package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// SessionRepository stores login sessions in the sessions table
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// SaveSession inserts the session or refreshes an existing token
func (r *SessionRepository) SaveSession(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, username, roles, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (token) DO UPDATE
		SET username = EXCLUDED.username, roles = EXCLUDED.roles, expires_at = EXCLUDED.expires_at
	`
	_, err := r.db.Exec(ctx, query, s.Token, s.UserID, s.Username, s.Roles, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, s.UserID)
		}
		return wrapErr(ErrMsgFailedToSaveSession, err)
	}
	return nil
}

// GetSession returns a live session. Expired rows are reported as not found
// and left for the cleanup job.
func (r *SessionRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT token, user_id, username, roles, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, token).Scan(&s.Token, &s.UserID, &s.Username, &s.Roles, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetSession, err)
	}
	if s.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

// DeleteSession removes a token. Unknown tokens are not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return wrapErr(ErrMsgFailedToDeleteSession, err)
}

// DeleteExpiredSessions purges every session that expired at or before now
func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToPurgeSessions, err)
	}
	return tag.RowsAffected(), nil
}
