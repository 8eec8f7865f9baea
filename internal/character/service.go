package character

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/metrics"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// CreateRequest carries a new character. UserID is only honored for admins;
// the handler decides who the owner is.
type CreateRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Background    string          `json:"background" validate:"max=2000"`
	ClassName     string          `json:"className" validate:"required,max=100"`
	SkillIDs      []int64         `json:"skillIds"`
	StartingItems []ItemSelection `json:"startingItems" validate:"omitempty,dive"`
	UserID        int64           `json:"userId,omitempty"`
}

// ItemSelection is a starting item picked at creation
type ItemSelection struct {
	Name        string `json:"name" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (s ItemSelection) valid() bool {
	return strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.Description) != ""
}

// Service defines the interface for character operations
type Service interface {
	CreateCharacter(ctx context.Context, ownerID int64, req CreateRequest) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, id int64, patch domain.CharacterPatch) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error

	GetCharacter(ctx context.Context, id int64) (*domain.CharacterDetail, error)
	// GetOwner returns the id of the user owning the character
	GetOwner(ctx context.Context, id int64) (int64, error)
	ListCharacters(ctx context.Context) ([]domain.CharacterDetail, error)
	ListCharactersByUser(ctx context.Context, userID int64) ([]domain.CharacterDetail, error)
	SearchCharacters(ctx context.Context, name string) ([]domain.CharacterDetail, error)
	// PageCharacters pages the case-insensitive name search; an empty name
	// pages every character
	PageCharacters(ctx context.Context, name string, req domain.PageRequest) (domain.Page[domain.CharacterDetail], error)

	AddInventoryItem(ctx context.Context, characterID int64, item domain.InventoryItem) (*domain.InventoryItem, error)
	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)
}

type service struct {
	characters repository.Character
	classes    repository.RPGClass
	users      repository.User
}

// NewService creates a new character service
func NewService(characters repository.Character, classes repository.RPGClass, users repository.User) Service {
	return &service{
		characters: characters,
		classes:    classes,
		users:      users,
	}
}

func (s *service) CreateCharacter(ctx context.Context, ownerID int64, req CreateRequest) (*domain.Character, error) {
	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, owner, req)
}

// validateSkills requires exactly three ids, each offered by class
func validateSkills(class *domain.RPGClass, skillIDs []int64) error {
	if len(skillIDs) != domain.RequiredSkillCount {
		return domain.ErrSkillCount
	}
	offered := class.SkillIDs()
	for _, id := range skillIDs {
		if !offered[id] {
			return domain.NewSkillNotInClassError(id, class.Name)
		}
	}
	return nil
}

func (s *service) create(ctx context.Context, owner *domain.User, req CreateRequest) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	className := strings.TrimSpace(req.ClassName)
	if className == "" {
		return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgClassRequired)
	}
	class, err := s.classes.GetClassByName(ctx, className)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgNameRequired)
	}
	if err := validateSkills(class, req.SkillIDs); err != nil {
		return nil, err
	}
	if len(req.StartingItems) > domain.MaxStartingItems {
		return nil, domain.ErrTooManyItems
	}
	for _, sel := range req.StartingItems {
		if !sel.valid() {
			log.Debug(LogMsgItemSkipped, "name", sel.Name)
		}
	}

	c := &domain.Character{
		Name:       name,
		Background: strings.TrimSpace(req.Background),
		Level:      domain.StartingLevel,
		Stats:      class.Stats,
		UserID:     owner.ID,
		ClassID:    class.ID,
		SkillIDs:   append([]int64(nil), req.SkillIDs...),
	}
	granted := startingInventory(class, req.StartingItems)

	tx, err := s.characters.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertCharacter(ctx, c); err != nil {
		log.Error(LogErrFailedToCreate, "error", err, "user_id", owner.ID, "class", class.Name)
		return nil, err
	}

	c.Inventory = make([]domain.InventoryItem, 0, len(granted))
	for _, g := range granted {
		item := g.item
		item.CharacterID = c.ID
		if err := tx.InsertInventoryItem(ctx, &item); err != nil {
			log.Error(LogErrFailedToCreate, "error", err, "character_id", c.ID, "item", item.Name)
			return nil, err
		}
		c.Inventory = append(c.Inventory, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.CharactersCreated.WithLabelValues(class.Name).Inc()
	for _, g := range granted {
		metrics.InventoryItemsAdded.WithLabelValues(g.source).Inc()
	}
	log.Info(LogMsgCharacterCreated,
		"character_id", c.ID,
		"user_id", owner.ID,
		"class", class.Name,
		"items", len(c.Inventory))
	return c, nil
}

func (s *service) UpdateCharacter(ctx context.Context, id int64, patch domain.CharacterPatch) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	c, err := s.characters.GetCharacterByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgNameRequired)
		}
		patch.Name = &trimmed
	}
	if patch.Level != nil && *patch.Level < domain.StartingLevel {
		return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgLevelTooLow)
	}
	patch.Apply(c)

	if patch.ClassName != nil {
		class, err := s.classes.GetClassByName(ctx, strings.TrimSpace(*patch.ClassName))
		if err != nil {
			return nil, err
		}
		c.ClassID = class.ID
	}

	replaceSkills := patch.SkillIDs != nil
	if replaceSkills {
		c.SkillIDs = append([]int64{}, patch.SkillIDs...)
	}

	if err := s.characters.UpdateCharacter(ctx, c, replaceSkills); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error(LogErrFailedToUpdate, "error", err, "character_id", id)
		}
		return nil, err
	}
	log.Info(LogMsgCharacterUpdated, "character_id", id, "skills_replaced", replaceSkills)
	return c, nil
}

// DeleteCharacter removes the character with its inventory. Ownership is
// checked by the caller.
func (s *service) DeleteCharacter(ctx context.Context, id int64) error {
	if err := s.characters.DeleteCharacter(ctx, id); err != nil {
		return err
	}
	metrics.CharactersDeleted.Inc()
	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character_id", id)
	return nil
}

func (s *service) GetCharacter(ctx context.Context, id int64) (*domain.CharacterDetail, error) {
	return s.characters.GetCharacterDetail(ctx, id)
}

func (s *service) GetOwner(ctx context.Context, id int64) (int64, error) {
	c, err := s.characters.GetCharacterByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return c.UserID, nil
}

func (s *service) ListCharacters(ctx context.Context) ([]domain.CharacterDetail, error) {
	return nonNil(s.characters.ListCharacterDetails(ctx))
}

func (s *service) ListCharactersByUser(ctx context.Context, userID int64) ([]domain.CharacterDetail, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return nonNil(s.characters.ListCharacterDetailsByUser(ctx, userID))
}

func (s *service) SearchCharacters(ctx context.Context, name string) ([]domain.CharacterDetail, error) {
	return nonNil(s.characters.SearchCharacterDetails(ctx, strings.TrimSpace(name)))
}

func (s *service) PageCharacters(ctx context.Context, name string, req domain.PageRequest) (domain.Page[domain.CharacterDetail], error) {
	req = req.Normalize()
	details, total, err := s.characters.PageCharacterDetails(ctx, strings.TrimSpace(name), req)
	if err != nil {
		return domain.Page[domain.CharacterDetail]{}, err
	}
	return domain.NewPage(details, req, total), nil
}

func (s *service) AddInventoryItem(ctx context.Context, characterID int64, item domain.InventoryItem) (*domain.InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, domain.ErrInventoryNameBlank
	}
	item.Description = strings.TrimSpace(item.Description)

	if _, err := s.characters.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}
	item.CharacterID = characterID
	if err := s.characters.AddInventoryItem(ctx, &item); err != nil {
		return nil, err
	}
	metrics.InventoryItemsAdded.WithLabelValues(metrics.ItemSourceManual).Inc()
	logger.FromContext(ctx).Info(LogMsgItemAdded, "character_id", characterID, "item_id", item.ID)
	return &item, nil
}

func (s *service) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	if _, err := s.characters.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}
	items, err := s.characters.ListInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func nonNil(details []domain.CharacterDetail, err error) ([]domain.CharacterDetail, error) {
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []domain.CharacterDetail{}
	}
	return details, nil
}
