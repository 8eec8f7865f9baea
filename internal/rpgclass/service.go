package rpgclass

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// Service defines the interface for class operations
type Service interface {
	CreateClass(ctx context.Context, class domain.RPGClass) (*domain.RPGClass, error)
	GetClass(ctx context.Context, id int64) (*domain.RPGClass, error)
	// GetClassByName ignores case and returns the class with its skills
	GetClassByName(ctx context.Context, name string) (*domain.RPGClass, error)
	ListClasses(ctx context.Context) ([]domain.RPGClass, error)

	// UpdateClass overwrites the present fields of patch. Stats are always
	// overwritten so they can be reset to zero.
	UpdateClass(ctx context.Context, patch domain.ClassPatch) (*domain.RPGClass, error)
	// BatchUpdate applies every patch or none of them. Patches naming unknown
	// classes are dropped from the result.
	BatchUpdate(ctx context.Context, patches []domain.ClassPatch) ([]domain.RPGClass, error)
	DeleteClass(ctx context.Context, id int64) error

	// GetStartingItems returns an empty list for an unknown class
	GetStartingItems(ctx context.Context, className string) ([]domain.StartingItem, error)
	AddStartingItem(ctx context.Context, classID int64, item domain.StartingItem) (*domain.StartingItem, error)
}

type service struct {
	repo repository.RPGClass
}

// NewService creates a new class service
func NewService(repo repository.RPGClass) Service {
	return &service{repo: repo}
}

// normalize trims text fields, resolves role and armor, and caps stats
func normalize(class *domain.RPGClass) error {
	class.Name = strings.TrimSpace(class.Name)
	if class.Name == "" {
		return domain.Wrapf(domain.ErrInvalidArgument, ErrMsgClassNameRequired)
	}
	class.Description = strings.TrimSpace(class.Description)

	role, err := domain.ParseClassRole(string(class.Role))
	if err != nil {
		return err
	}
	class.Role = role
	class.ArmorType = domain.ParseArmorType(string(class.ArmorType))
	class.StartingWeapon = strings.TrimSpace(class.StartingWeapon)
	class.Weapons = cleanWeapons(class.Weapons)
	class.Stats = class.Stats.Capped()

	for i := range class.Skills {
		class.Skills[i].Name = strings.TrimSpace(class.Skills[i].Name)
	}
	return nil
}

func cleanWeapons(weapons []string) []string {
	out := make([]string, 0, len(weapons))
	for _, w := range weapons {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// CreateClass caps stats and persists the class with any skills it carries
func (s *service) CreateClass(ctx context.Context, class domain.RPGClass) (*domain.RPGClass, error) {
	log := logger.FromContext(ctx)
	if err := normalize(&class); err != nil {
		return nil, err
	}
	if class.Skills == nil {
		class.Skills = []domain.Skill{}
	}
	if err := s.repo.CreateClass(ctx, &class); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			log.Error(LogErrFailedToSaveClass, "error", err, "name", class.Name)
		}
		return nil, err
	}
	log.Info(LogMsgClassCreated, "class_id", class.ID, "name", class.Name)
	return &class, nil
}

func (s *service) GetClass(ctx context.Context, id int64) (*domain.RPGClass, error) {
	return s.repo.GetClassByID(ctx, id)
}

func (s *service) GetClassByName(ctx context.Context, name string) (*domain.RPGClass, error) {
	return s.repo.GetClassByName(ctx, strings.TrimSpace(name))
}

func (s *service) ListClasses(ctx context.Context) ([]domain.RPGClass, error) {
	return s.repo.ListClasses(ctx)
}

// applyPatch copies the present fields of patch onto class
func applyPatch(class *domain.RPGClass, patch domain.ClassPatch) {
	if patch.Name != nil {
		class.Name = *patch.Name
	}
	if patch.Description != nil {
		class.Description = *patch.Description
	}
	if patch.Role != nil {
		class.Role = domain.ClassRole(*patch.Role)
	}
	if patch.ArmorType != nil {
		class.ArmorType = domain.ArmorType(*patch.ArmorType)
	}
	if patch.StartingWeapon != nil {
		class.StartingWeapon = *patch.StartingWeapon
	}
	if len(patch.Weapons) > 0 {
		class.Weapons = patch.Weapons
	}
	class.Stats = patch.Stats
}

func (s *service) UpdateClass(ctx context.Context, patch domain.ClassPatch) (*domain.RPGClass, error) {
	log := logger.FromContext(ctx)

	class, err := s.repo.GetClassByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}
	applyPatch(class, patch)
	if err := normalize(class); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateClass(ctx, class); err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrAlreadyExists) {
			log.Error(LogErrFailedToSaveClass, "error", err, "class_id", patch.ID)
		}
		return nil, err
	}
	log.Info(LogMsgClassUpdated, "class_id", class.ID)
	return class, nil
}

func (s *service) BatchUpdate(ctx context.Context, patches []domain.ClassPatch) ([]domain.RPGClass, error) {
	log := logger.FromContext(ctx)

	// every patch is checked before anything is written
	classes := make([]*domain.RPGClass, 0, len(patches))
	for _, patch := range patches {
		class, err := s.repo.GetClassByID(ctx, patch.ID)
		if err != nil {
			if errors.Is(err, domain.ErrClassNotFound) {
				log.Info(LogMsgBatchEntryDropped, "class_id", patch.ID)
				continue
			}
			return nil, err
		}
		applyPatch(class, patch)
		if err := normalize(class); err != nil {
			return nil, fmt.Errorf("class %d: %w", patch.ID, err)
		}
		classes = append(classes, class)
	}

	saved := make([]domain.RPGClass, 0, len(classes))
	if len(classes) == 0 {
		return saved, nil
	}
	if err := s.repo.UpdateClasses(ctx, classes); err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrAlreadyExists) {
			log.Error(LogErrFailedToSaveClass, "error", err, "count", len(classes))
		}
		return nil, err
	}
	for _, class := range classes {
		saved = append(saved, *class)
	}
	log.Info(LogMsgBatchUpdated, "count", len(saved))
	return saved, nil
}

// DeleteClass fails with domain.ErrClassInUse while characters use the class
func (s *service) DeleteClass(ctx context.Context, id int64) error {
	if err := s.repo.DeleteClass(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgClassDeleted, "class_id", id)
	return nil
}

func (s *service) GetStartingItems(ctx context.Context, className string) ([]domain.StartingItem, error) {
	class, err := s.repo.GetClassByName(ctx, strings.TrimSpace(className))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.StartingItem{}, nil
		}
		return nil, err
	}
	items, err := s.repo.GetStartingItems(ctx, class.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.StartingItem{}
	}
	return items, nil
}

func (s *service) AddStartingItem(ctx context.Context, classID int64, item domain.StartingItem) (*domain.StartingItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgItemNameRequired)
	}
	item.ClassID = classID
	if err := s.repo.AddStartingItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
