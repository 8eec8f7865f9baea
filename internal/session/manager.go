package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/metrics"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// Config controls session lifetime and the session cookie
type Config struct {
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

// Manager issues, resolves and destroys cookie sessions over a store
type Manager struct {
	store  repository.Session
	config Config
	now    func() time.Time
}

// NewManager creates a manager; zero config fields take their defaults
func NewManager(store repository.Session, config Config) *Manager {
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if config.CookieName == "" {
		config.CookieName = DefaultCookieName
	}
	return &Manager{store: store, config: config, now: time.Now}
}

// CookieName is the name of the session cookie
func (m *Manager) CookieName() string {
	return m.config.CookieName
}

// NewToken returns a random URL-safe token
func NewToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create stores a new session for user and sets the cookie on w
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, user *domain.User) (*domain.Session, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	now := m.now()
	s := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Roles:     append([]string(nil), user.Roles...),
		CreatedAt: now,
		ExpiresAt: now.Add(m.config.TTL),
	}
	if err := m.store.SaveSession(ctx, s); err != nil {
		return nil, err
	}
	http.SetCookie(w, m.cookie(token, s.ExpiresAt))
	logger.FromContext(ctx).Info(LogMsgSessionCreated, "user_id", user.ID)
	return s, nil
}

// Load resolves the session named by the request cookie. A missing cookie,
// an unknown token and an expired session all yield domain.ErrSessionNotFound.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*domain.Session, error) {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil || c.Value == "" {
		return nil, domain.ErrSessionNotFound
	}
	s, err := m.store.GetSession(ctx, c.Value)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Destroy deletes the request's session, if any, and expires the cookie
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer http.SetCookie(w, m.cookie("", time.Unix(0, 0)))

	c, err := r.Cookie(m.config.CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	if err := m.store.DeleteSession(ctx, c.Value); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.FromContext(ctx).Error(LogErrFailedToDestroy, "error", err)
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSessionDestroyed)
	return nil
}

// Purge removes every session expired at the current time
func (m *Manager) Purge(ctx context.Context) (int64, error) {
	n, err := m.store.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.SessionsPurged.Add(float64(n))
		logger.FromContext(ctx).Info(LogMsgSessionsPurged, "count", n)
	}
	return n, nil
}

func (m *Manager) cookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     m.config.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	}
	return c
}
