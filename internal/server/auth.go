package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/handler"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/session"
)

// SessionLoader resolves the session carried by a request
type SessionLoader interface {
	Load(ctx context.Context, r *http.Request) (*domain.Session, error)
}

// OwnerLookup returns the id of the user owning a character
type OwnerLookup interface {
	GetOwner(ctx context.Context, characterID int64) (int64, error)
}

// RequireAuth rejects requests without a live session and attaches the
// principal for the rest of the chain
func RequireAuth(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := sessions.Load(r.Context(), r)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					handler.WriteError(w, http.StatusUnauthorized, handler.ErrMsgNotAuthenticated)
					return
				}
				logger.FromContext(r.Context()).Error(LogMsgSessionLoad, "error", err)
				handler.WriteServiceError(w, r, "Load session", err)
				return
			}

			ctx := session.WithPrincipal(r.Context(), domain.Principal{
				UserID:   s.UserID,
				Username: s.Username,
				Roles:    s.Roles,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole admits principals holding role
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := session.PrincipalFromContext(r.Context())
			if !ok {
				handler.WriteError(w, http.StatusUnauthorized, handler.ErrMsgNotAuthenticated)
				return
			}
			for _, have := range p.Roles {
				if have == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			logger.FromContext(r.Context()).Warn(LogMsgAccessDenied, "user_id", p.UserID, "required_role", role)
			handler.WriteError(w, http.StatusForbidden, handler.ErrMsgAccessDenied)
		})
	}
}

// RequireCharacterOwner admits the owner of the character named by the URL
// parameter, and admins. A missing character is a 404 before any 403.
func RequireCharacterOwner(lookup OwnerLookup, param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := session.PrincipalFromContext(r.Context())
			if !ok {
				handler.WriteError(w, http.StatusUnauthorized, handler.ErrMsgNotAuthenticated)
				return
			}
			id, err := handler.PathID(r, param)
			if err != nil {
				handler.WriteServiceError(w, r, "Check owner", err)
				return
			}
			owner, err := lookup.GetOwner(r.Context(), id)
			if err != nil {
				handler.WriteServiceError(w, r, "Check owner", err)
				return
			}
			if !p.CanActFor(owner) {
				logger.FromContext(r.Context()).Warn(LogMsgAccessDenied, "user_id", p.UserID, "character_id", id)
				handler.WriteError(w, http.StatusForbidden, handler.ErrMsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelfOrAdmin admits the user named by the URL parameter, and admins
func RequireSelfOrAdmin(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := session.PrincipalFromContext(r.Context())
			if !ok {
				handler.WriteError(w, http.StatusUnauthorized, handler.ErrMsgNotAuthenticated)
				return
			}
			id, err := handler.PathID(r, param)
			if err != nil {
				handler.WriteServiceError(w, r, "Check account", err)
				return
			}
			if !p.CanActFor(id) {
				logger.FromContext(r.Context()).Warn(LogMsgAccessDenied, "user_id", p.UserID, "target_user_id", id)
				handler.WriteError(w, http.StatusForbidden, handler.ErrMsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
