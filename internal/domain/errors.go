package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgNotFound           = "not found"
	ErrMsgAlreadyExists      = "already exists"
	ErrMsgInvalidArgument    = "invalid argument"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgForbidden          = "forbidden"
	ErrMsgConflict           = "conflict"
	ErrMsgInvalidCredentials = "invalid credentials"

	ErrMsgSkillCount         = "you must select 3 starting skills"
	ErrMsgTooManyItems       = "you can only select up to 3 starting items"
	ErrMsgSkillNotInClass    = "skill ID %d is not allowed for class %s"
	ErrMsgInventoryNameBlank = "inventory item name must not be blank"
	ErrMsgValueTooLong       = "value is too long"

	ErrMsgTxClosed = "tx is closed"
)

// Error categories. Every error returned by a service wraps exactly one of
// these so the HTTP layer can pick a status code with errors.Is.
var (
	ErrNotFound           = errors.New(ErrMsgNotFound)
	ErrAlreadyExists      = errors.New(ErrMsgAlreadyExists)
	ErrInvalidArgument    = errors.New(ErrMsgInvalidArgument)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrForbidden          = errors.New(ErrMsgForbidden)
	ErrConflict           = errors.New(ErrMsgConflict)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
)

// Specific errors. Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// when more context is available.
var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrCharacterNotFound = fmt.Errorf("character %w", ErrNotFound)
	ErrClassNotFound     = fmt.Errorf("class %w", ErrNotFound)
	ErrSkillNotFound     = fmt.Errorf("skill %w", ErrNotFound)
	ErrRoleNotFound      = fmt.Errorf("role %w", ErrNotFound)
	ErrSessionNotFound   = fmt.Errorf("session %w", ErrNotFound)

	ErrUsernameTaken  = fmt.Errorf("username %w", ErrAlreadyExists)
	ErrEmailTaken     = fmt.Errorf("email %w", ErrAlreadyExists)
	ErrClassNameTaken = fmt.Errorf("class name %w", ErrAlreadyExists)

	ErrClassInUse = fmt.Errorf("%w: class is still used by characters", ErrConflict)

	ErrSkillCount         = fmt.Errorf("%w: %s", ErrInvalidArgument, ErrMsgSkillCount)
	ErrTooManyItems       = fmt.Errorf("%w: %s", ErrInvalidArgument, ErrMsgTooManyItems)
	ErrInventoryNameBlank = fmt.Errorf("%w: %s", ErrInvalidArgument, ErrMsgInventoryNameBlank)
	ErrUnknownClassRole   = fmt.Errorf("%w: unknown class role", ErrInvalidArgument)
	ErrValueTooLong       = fmt.Errorf("%w: %s", ErrInvalidArgument, ErrMsgValueTooLong)
)

// NewSkillNotInClassError reports a selected skill that the class does not offer.
func NewSkillNotInClassError(skillID int64, className string) error {
	return fmt.Errorf("%w: "+ErrMsgSkillNotInClass, ErrInvalidArgument, skillID, className)
}

// Wrapf wraps a sentinel with formatted detail, keeping it matchable with errors.Is.
func Wrapf(base error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{base}, args...)...)
}
