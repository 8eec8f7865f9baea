package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterCreator_Go/internal/character"
	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/session"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

// optional returns args.Get(i) as T, or the zero value when nil
func optional[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req user.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req user.RegisterRequest, roles ...string) (*domain.User, error) {
	args := m.Called(ctx, req, roles)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	args := m.Called(ctx, login, password)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return optional[[]domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id int64, req user.UpdateRequest) (*domain.User, error) {
	args := m.Called(ctx, id, req)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context, req user.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	return optional[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	return m.Called().Get(0).(user.CacheStats)
}

type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) CreateCharacter(ctx context.Context, ownerID int64, req character.CreateRequest) (*domain.Character, error) {
	args := m.Called(ctx, ownerID, req)
	return optional[*domain.Character](args, 0), args.Error(1)
}

func (m *MockCharacterService) UpdateCharacter(ctx context.Context, id int64, patch domain.CharacterPatch) (*domain.Character, error) {
	args := m.Called(ctx, id, patch)
	return optional[*domain.Character](args, 0), args.Error(1)
}

func (m *MockCharacterService) DeleteCharacter(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCharacterService) GetCharacter(ctx context.Context, id int64) (*domain.CharacterDetail, error) {
	args := m.Called(ctx, id)
	return optional[*domain.CharacterDetail](args, 0), args.Error(1)
}

func (m *MockCharacterService) GetOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCharacterService) ListCharacters(ctx context.Context) ([]domain.CharacterDetail, error) {
	args := m.Called(ctx)
	return optional[[]domain.CharacterDetail](args, 0), args.Error(1)
}

func (m *MockCharacterService) ListCharactersByUser(ctx context.Context, userID int64) ([]domain.CharacterDetail, error) {
	args := m.Called(ctx, userID)
	return optional[[]domain.CharacterDetail](args, 0), args.Error(1)
}

func (m *MockCharacterService) SearchCharacters(ctx context.Context, name string) ([]domain.CharacterDetail, error) {
	args := m.Called(ctx, name)
	return optional[[]domain.CharacterDetail](args, 0), args.Error(1)
}

func (m *MockCharacterService) PageCharacters(ctx context.Context, name string, req domain.PageRequest) (domain.Page[domain.CharacterDetail], error) {
	args := m.Called(ctx, name, req)
	return optional[domain.Page[domain.CharacterDetail]](args, 0), args.Error(1)
}

func (m *MockCharacterService) AddInventoryItem(ctx context.Context, characterID int64, item domain.InventoryItem) (*domain.InventoryItem, error) {
	args := m.Called(ctx, characterID, item)
	return optional[*domain.InventoryItem](args, 0), args.Error(1)
}

func (m *MockCharacterService) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, characterID)
	return optional[[]domain.InventoryItem](args, 0), args.Error(1)
}

type MockClassService struct {
	mock.Mock
}

func (m *MockClassService) CreateClass(ctx context.Context, class domain.RPGClass) (*domain.RPGClass, error) {
	args := m.Called(ctx, class)
	return optional[*domain.RPGClass](args, 0), args.Error(1)
}

func (m *MockClassService) GetClass(ctx context.Context, id int64) (*domain.RPGClass, error) {
	args := m.Called(ctx, id)
	return optional[*domain.RPGClass](args, 0), args.Error(1)
}

func (m *MockClassService) GetClassByName(ctx context.Context, name string) (*domain.RPGClass, error) {
	args := m.Called(ctx, name)
	return optional[*domain.RPGClass](args, 0), args.Error(1)
}

func (m *MockClassService) ListClasses(ctx context.Context) ([]domain.RPGClass, error) {
	args := m.Called(ctx)
	return optional[[]domain.RPGClass](args, 0), args.Error(1)
}

func (m *MockClassService) UpdateClass(ctx context.Context, patch domain.ClassPatch) (*domain.RPGClass, error) {
	args := m.Called(ctx, patch)
	return optional[*domain.RPGClass](args, 0), args.Error(1)
}

func (m *MockClassService) BatchUpdate(ctx context.Context, patches []domain.ClassPatch) ([]domain.RPGClass, error) {
	args := m.Called(ctx, patches)
	return optional[[]domain.RPGClass](args, 0), args.Error(1)
}

func (m *MockClassService) DeleteClass(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockClassService) GetStartingItems(ctx context.Context, className string) ([]domain.StartingItem, error) {
	args := m.Called(ctx, className)
	return optional[[]domain.StartingItem](args, 0), args.Error(1)
}

func (m *MockClassService) AddStartingItem(ctx context.Context, classID int64, item domain.StartingItem) (*domain.StartingItem, error) {
	args := m.Called(ctx, classID, item)
	return optional[*domain.StartingItem](args, 0), args.Error(1)
}

type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) CreateSkill(ctx context.Context, skill domain.Skill) (*domain.Skill, error) {
	args := m.Called(ctx, skill)
	return optional[*domain.Skill](args, 0), args.Error(1)
}

func (m *MockSkillService) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	return optional[*domain.Skill](args, 0), args.Error(1)
}

func (m *MockSkillService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	return optional[[]domain.Skill](args, 0), args.Error(1)
}

func (m *MockSkillService) ListSkillsByClass(ctx context.Context, classID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, classID)
	return optional[[]domain.Skill](args, 0), args.Error(1)
}

func (m *MockSkillService) DeleteSkill(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSkillService) AddSkillToCharacter(ctx context.Context, characterID, skillID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID, skillID)
	return optional[*domain.Character](args, 0), args.Error(1)
}

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Create(ctx context.Context, w http.ResponseWriter, u *domain.User) (*domain.Session, error) {
	args := m.Called(ctx, w, u)
	return optional[*domain.Session](args, 0), args.Error(1)
}

func (m *MockSessions) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return m.Called(ctx, w, r).Error(0)
}

// withPrincipal attaches a logged-in caller to the request
func withPrincipal(r *http.Request, id int64, username string, roles ...string) *http.Request {
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	return r.WithContext(session.WithPrincipal(r.Context(), domain.Principal{
		UserID:   id,
		Username: username,
		Roles:    roles,
	}))
}

// withURLParams routes chi URL params into a request built by httptest
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
