package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/metrics"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// RegisterRequest carries the fields of a new account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
}

// UpdateRequest is a selective account update; nil fields are kept
type UpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,password"`
}

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	// CreateUser is the admin path; roles default to ROLE_USER
	CreateUser(ctx context.Context, req RegisterRequest, roles ...string) (*domain.User, error)
	// Authenticate accepts a username or an email as login
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)

	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// EnsureAdmin creates the account if missing and grants ROLE_ADMIN
	EnsureAdmin(ctx context.Context, req RegisterRequest) (*domain.User, error)
	GetCacheStats() CacheStats
}

// service implements the Service interface
type service struct {
	repo  repository.User
	cache *userCache
	now   func() time.Time
}

// NewService creates a new user service
func NewService(repo repository.User, cacheConfig CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newUserCache(cacheConfig),
		now:   time.Now,
	}
}

// Register creates a ROLE_USER account
func (s *service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	u, err := s.create(ctx, req, []string{domain.RoleUser})
	if err != nil {
		return nil, err
	}
	metrics.UsersRegistered.Inc()
	logger.FromContext(ctx).Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username)
	return u, nil
}

// CreateUser creates an account with the given roles
func (s *service) CreateUser(ctx context.Context, req RegisterRequest, roles ...string) (*domain.User, error) {
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	u, err := s.create(ctx, req, roles)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgUserCreated, "user_id", u.ID, "username", u.Username, "roles", u.Roles)
	return u, nil
}

func (s *service) create(ctx context.Context, req RegisterRequest, roles []string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username, err := normalizeUsername(req.Username)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, 0, username, email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		log.Error(LogErrFailedToHash, "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	for _, role := range roles {
		if _, err := s.repo.GetOrCreateRole(ctx, role); err != nil {
			return nil, err
		}
	}

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		Enabled:      true,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		log.Error(LogErrFailedToCreate, "error", err, "username", username)
		return nil, err
	}
	s.cache.Set(u)
	return u, nil
}

// ensureAvailable fails with AlreadyExists when another account (not selfID)
// holds the username or email
func (s *service) ensureAvailable(ctx context.Context, selfID int64, username, email string) error {
	if username != "" {
		existing, err := s.repo.GetUserByUsername(ctx, username)
		switch {
		case err == nil && existing.ID != selfID:
			return domain.ErrUsernameTaken
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return err
		}
	}
	if email != "" {
		existing, err := s.repo.GetUserByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != selfID:
			return domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return err
		}
	}
	return nil
}

// Authenticate checks the password against the stored hash. Unknown logins and
// wrong passwords produce the same error.
func (s *service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	login = strings.TrimSpace(login)

	u, err := s.lookupLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues(metrics.LoginResultFailure).Inc()
			log.Info(LogMsgLoginFailed, "login", login, "reason", "unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		log.Error(LogErrFailedToLookupKey, "error", err, "login", login)
		return nil, err
	}

	if !checkPassword(u.PasswordHash, password) {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultFailure).Inc()
		log.Info(LogMsgLoginFailed, "login", login, "reason", "bad password")
		return nil, domain.ErrInvalidCredentials
	}
	if !u.Enabled {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultFailure).Inc()
		return nil, domain.Wrapf(domain.ErrUnauthorized, ErrMsgAccountDisabled)
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginResultSuccess).Inc()
	log.Info(LogMsgLoginSucceeded, "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *service) lookupLogin(ctx context.Context, login string) (*domain.User, error) {
	if strings.Contains(login, "@") {
		u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(login))
		if err == nil || !errors.Is(err, domain.ErrNotFound) {
			return u, err
		}
	}
	return s.repo.GetUserByUsername(ctx, login)
}

// GetUser returns a user by id, served from cache when possible
func (s *service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := s.cache.Get(id); ok {
		return u, nil
	}
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(u)
	return u, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUser applies the present fields of req
func (s *service) UpdateUser(ctx context.Context, id int64, req UpdateRequest) (*domain.User, error) {
	log := logger.FromContext(ctx)

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newUsername, newEmail string
	if req.Username != nil {
		if newUsername, err = normalizeUsername(*req.Username); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if newEmail, err = normalizeEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if err := s.ensureAvailable(ctx, id, newUsername, newEmail); err != nil {
		return nil, err
	}

	if newUsername != "" {
		u.Username = newUsername
	}
	if newEmail != "" {
		u.Email = newEmail
	}
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		if u.PasswordHash, err = hashPassword(*req.Password); err != nil {
			log.Error(LogErrFailedToHash, "error", err)
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		log.Error(LogErrFailedToUpdate, "error", err, "user_id", id)
		return nil, err
	}
	s.cache.Invalidate(id)
	log.Info(LogMsgUserUpdated, "user_id", id)
	return u, nil
}

// DeleteUser removes the account with its characters and sessions
func (s *service) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error(LogErrFailedToDelete, "error", err, "user_id", id)
		}
		return err
	}
	s.cache.Invalidate(id)
	log.Info(LogMsgUserDeleted, "user_id", id)
	return nil
}

// EnsureAdmin is idempotent: an existing account with the username keeps its
// password and only gains ROLE_ADMIN
func (s *service) EnsureAdmin(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return existing, nil
		}
		if err := s.repo.AssignRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
			return nil, err
		}
		existing.Roles = append(existing.Roles, domain.RoleAdmin)
		s.cache.Invalidate(existing.ID)
		log.Info(LogMsgAdminRoleGranted, "user_id", existing.ID, "username", existing.Username)
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	u, err := s.create(ctx, req, []string{domain.RoleUser, domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgAdminCreated, "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}
