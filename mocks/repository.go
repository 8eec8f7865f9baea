// Package mocks holds testify mocks of the repository interfaces for
// service tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// MockUserRepository mocks repository.User
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) GetOrCreateRole(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) AssignRole(ctx context.Context, userID int64, role string) error {
	return m.Called(ctx, userID, role).Error(0)
}

// MockClassRepository mocks repository.RPGClass
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) CreateClass(ctx context.Context, class *domain.RPGClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *MockClassRepository) GetClassByID(ctx context.Context, id int64) (*domain.RPGClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RPGClass), args.Error(1)
}

func (m *MockClassRepository) GetClassByName(ctx context.Context, name string) (*domain.RPGClass, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RPGClass), args.Error(1)
}

func (m *MockClassRepository) ListClasses(ctx context.Context) ([]domain.RPGClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RPGClass), args.Error(1)
}

func (m *MockClassRepository) UpdateClass(ctx context.Context, class *domain.RPGClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *MockClassRepository) UpdateClasses(ctx context.Context, classes []*domain.RPGClass) error {
	return m.Called(ctx, classes).Error(0)
}

func (m *MockClassRepository) DeleteClass(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockClassRepository) GetStartingItems(ctx context.Context, classID int64) ([]domain.StartingItem, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StartingItem), args.Error(1)
}

func (m *MockClassRepository) AddStartingItem(ctx context.Context, item *domain.StartingItem) error {
	return m.Called(ctx, item).Error(0)
}

// MockSkillRepository mocks repository.Skill
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepository) GetSkillByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListSkillsByClass(ctx context.Context, classID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSkillRepository) AppendCharacterSkill(ctx context.Context, characterID, skillID int64) error {
	return m.Called(ctx, characterID, skillID).Error(0)
}

// MockCharacterRepository mocks repository.Character
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CharacterTx), args.Error(1)
}

func (m *MockCharacterRepository) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepository) UpdateCharacter(ctx context.Context, character *domain.Character, replaceSkills bool) error {
	return m.Called(ctx, character, replaceSkills).Error(0)
}

func (m *MockCharacterRepository) DeleteCharacter(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCharacterRepository) GetCharacterDetail(ctx context.Context, id int64) (*domain.CharacterDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterDetail), args.Error(1)
}

func (m *MockCharacterRepository) ListCharacterDetails(ctx context.Context) ([]domain.CharacterDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CharacterDetail), args.Error(1)
}

func (m *MockCharacterRepository) ListCharacterDetailsByUser(ctx context.Context, userID int64) ([]domain.CharacterDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CharacterDetail), args.Error(1)
}

func (m *MockCharacterRepository) SearchCharacterDetails(ctx context.Context, name string) ([]domain.CharacterDetail, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CharacterDetail), args.Error(1)
}

func (m *MockCharacterRepository) PageCharacterDetails(ctx context.Context, name string, page domain.PageRequest) ([]domain.CharacterDetail, int64, error) {
	args := m.Called(ctx, name, page)
	var details []domain.CharacterDetail
	if args.Get(0) != nil {
		details = args.Get(0).([]domain.CharacterDetail)
	}
	return details, args.Get(1).(int64), args.Error(2)
}

func (m *MockCharacterRepository) AddInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCharacterRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

// MockCharacterTx mocks repository.CharacterTx
type MockCharacterTx struct {
	mock.Mock
}

func (m *MockCharacterTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCharacterTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCharacterTx) InsertCharacter(ctx context.Context, character *domain.Character) error {
	return m.Called(ctx, character).Error(0)
}

func (m *MockCharacterTx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

// MockSessionRepository mocks repository.Session
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
