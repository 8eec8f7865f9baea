package repository

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// User defines persistence for accounts and their roles
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int64) error

	GetOrCreateRole(ctx context.Context, name string) (int64, error)
	AssignRole(ctx context.Context, userID int64, role string) error
}
