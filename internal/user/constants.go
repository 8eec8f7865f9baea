package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ============================================================================
// Credential Rules
// ============================================================================

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32

	MinPasswordLength = 8
	// MaxPasswordLength is bcrypt's input limit
	MaxPasswordLength = 72
)

// PasswordHashCost is the bcrypt work factor for new hashes
const PasswordHashCost = bcrypt.DefaultCost

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is bumped when the cached user shape changes so stale
// entries are dropped on read
const CacheSchemaVersion = "1.0"

const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgUsernameLength   = "username must be between 3 and 32 characters"
	ErrMsgUsernameChars    = "username may only contain letters, digits, '.', '-' and '_'"
	ErrMsgEmailInvalid     = "email address is not valid"
	ErrMsgPasswordLength   = "password must be between 8 and 72 characters"
	ErrMsgPasswordStrength = "password must contain at least one letter and one digit"
	ErrMsgAccountDisabled  = "account is disabled"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserRegistered    = "User registered"
	LogMsgUserCreated       = "User created by admin"
	LogMsgUserUpdated       = "User updated"
	LogMsgUserDeleted       = "User deleted"
	LogMsgLoginSucceeded    = "Login succeeded"
	LogMsgLoginFailed       = "Login failed"
	LogMsgAdminCreated      = "Admin account created"
	LogMsgAdminRoleGranted  = "Admin role granted to existing account"
	LogErrFailedToCreate    = "Failed to create user"
	LogErrFailedToUpdate    = "Failed to update user"
	LogErrFailedToDelete    = "Failed to delete user"
	LogErrFailedToHash      = "Failed to hash password"
	LogErrFailedToLookupKey = "Failed to look up user"
)
