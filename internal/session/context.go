package session

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

type principalKey struct{}

// WithPrincipal attaches the authenticated caller to ctx
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller attached by the auth middleware
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
