package user

import (
	"context"
	"strings"
	"sync"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// FakeRepository is a stateful in-memory repository.User for service tests.
type FakeRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
	roles  map[string]int64

	// failCreate, when set, is returned by CreateUser
	failCreate error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		users: make(map[int64]*domain.User),
		roles: map[string]int64{domain.RoleUser: 1, domain.RoleAdmin: 2},
	}
}

func clone(u *domain.User) *domain.User {
	c := *u
	c.Roles = append([]string(nil), u.Roles...)
	return &c
}

func (f *FakeRepository) CreateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = clone(user)
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return clone(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if match(u) {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return f.find(func(u *domain.User) bool { return u.Username == username })
}

func (f *FakeRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.find(func(u *domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *FakeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetUserByUsername(ctx, username)
	return err == nil, nil
}

func (f *FakeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *FakeRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.users))
	for id := int64(1); id <= f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, *clone(u))
		}
	}
	return out, nil
}

func (f *FakeRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.users[user.ID] = clone(user)
	return nil
}

func (f *FakeRepository) DeleteUser(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *FakeRepository) GetOrCreateRole(ctx context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.roles[name]; ok {
		return id, nil
	}
	id := int64(len(f.roles) + 1)
	f.roles[name] = id
	return id, nil
}

func (f *FakeRepository) AssignRole(ctx context.Context, userID int64, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
	}
	return nil
}
