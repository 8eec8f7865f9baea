package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// MemoryStore keeps sessions in a size-bounded LRU whose entries also expire
// after the session TTL. Sessions do not survive a restart.
type MemoryStore struct {
	lru *expirable.LRU[string, domain.Session]
}

// NewMemoryStore creates an in-process session store
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{lru: expirable.NewLRU[string, domain.Session](size, nil, ttl)}
}

func (s *MemoryStore) SaveSession(_ context.Context, session *domain.Session) error {
	stored := *session
	stored.Roles = append([]string(nil), session.Roles...)
	s.lru.Add(session.Token, stored)
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, token string) (*domain.Session, error) {
	stored, ok := s.lru.Get(token)
	if !ok || stored.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	stored.Roles = append([]string(nil), stored.Roles...)
	return &stored, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, token string) error {
	s.lru.Remove(token)
	return nil
}

func (s *MemoryStore) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, token := range s.lru.Keys() {
		stored, ok := s.lru.Peek(token)
		if ok && stored.Expired(now) {
			s.lru.Remove(token)
			n++
		}
	}
	return n, nil
}

// Len is the number of live entries
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}
