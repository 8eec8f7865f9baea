package session

import "time"

const (
	// TokenBytes is the entropy of a session token before encoding
	TokenBytes = 32

	DefaultTTL        = 24 * time.Hour
	DefaultCookieName = "SESSION"
	DefaultCacheSize  = 10000

	// RedisKeyPrefix namespaces session keys in a shared Redis database
	RedisKeyPrefix = "session:"
)

const (
	LogMsgSessionCreated   = "Session created"
	LogMsgSessionDestroyed = "Session destroyed"
	LogMsgSessionsPurged   = "Expired sessions purged"
	LogErrFailedToDestroy  = "Failed to destroy session"
)
