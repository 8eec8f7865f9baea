package domain

import "time"

// Session is a server-side login session keyed by an opaque cookie token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID   int64
	Username string
	Roles    []string
}

// IsAdmin reports whether the principal holds ROLE_ADMIN
func (p Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// CanActFor reports whether the principal may modify resources owned by userID
func (p Principal) CanActFor(userID int64) bool {
	return p.UserID == userID || p.IsAdmin()
}
