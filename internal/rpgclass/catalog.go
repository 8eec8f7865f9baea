package rpgclass

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
	"github.com/osse101/CharacterCreator_Go/internal/validation"
)

// ErrInvalidCatalog is returned for catalog files that fail validation
var ErrInvalidCatalog = errors.New("invalid class catalog")

// Catalog is the YAML seed of classes, their skills and starting items
type Catalog struct {
	Version string         `yaml:"version"`
	Classes []CatalogClass `yaml:"classes"`
}

// CatalogClass is one class entry of the catalog
type CatalogClass struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description"`
	Stats          domain.Stats   `yaml:"stats"`
	Role           string         `yaml:"role"`
	ArmorType      string         `yaml:"armorType"`
	Weapons        []string       `yaml:"weapons"`
	StartingWeapon string         `yaml:"startingWeapon"`
	Skills         []CatalogEntry `yaml:"skills"`
	StartingItems  []CatalogEntry `yaml:"startingItems"`
}

// CatalogEntry is a named skill or starting item
type CatalogEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SyncResult reports what a catalog sync changed
type SyncResult struct {
	ClassesInserted int
	ClassesSkipped  int
	ItemsInserted   int
}

// CatalogLoader loads the class catalog and syncs it into storage
type CatalogLoader interface {
	Load(path string) (*Catalog, error)
	Validate(catalog *Catalog) error
	Sync(ctx context.Context, catalog *Catalog) (*SyncResult, error)
}

type catalogLoader struct {
	repo            repository.RPGClass
	svc             Service
	schemaValidator validation.SchemaValidator
}

// NewCatalogLoader creates a loader that writes through the class service
func NewCatalogLoader(repo repository.RPGClass) CatalogLoader {
	return &catalogLoader{
		repo:            repo,
		svc:             NewService(repo),
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads a catalog YAML file, checks it against the catalog schema and
// parses it
func (l *catalogLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class catalog: %w", err)
	}

	if err := l.schemaValidator.ValidateYAML(data, validation.SchemaClasses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse class catalog: %w", err)
	}
	return &catalog, nil
}

// Validate rejects blank or case-insensitively duplicated class names and
// unknown roles
func (l *catalogLoader) Validate(catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("%w: catalog is nil", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(catalog.Classes))
	for i, c := range catalog.Classes {
		key := domain.Fold(c.Name)
		if key == "" {
			return fmt.Errorf("%w: class at index %d has empty name", ErrInvalidCatalog, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate class '%s'", ErrInvalidCatalog, c.Name)
		}
		seen[key] = true

		if _, err := domain.ParseClassRole(c.Role); err != nil {
			return fmt.Errorf("%w: class '%s': %v", ErrInvalidCatalog, c.Name, err)
		}
		for j, s := range c.Skills {
			if s.Name == "" {
				return fmt.Errorf("%w: class '%s' skill %d has empty name", ErrInvalidCatalog, c.Name, j)
			}
		}
	}
	return nil
}

// Sync inserts every catalog class that is missing by name. Existing classes
// are left as they are, so edits made through the API survive restarts.
func (l *catalogLoader) Sync(ctx context.Context, catalog *Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for _, entry := range catalog.Classes {
		_, err := l.repo.GetClassByName(ctx, entry.Name)
		if err == nil {
			result.ClassesSkipped++
			log.Debug(LogMsgCatalogClassExists, "name", entry.Name)
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return result, err
		}

		created, err := l.svc.CreateClass(ctx, entry.toClass())
		if err != nil {
			return result, fmt.Errorf("seed class '%s': %w", entry.Name, err)
		}
		result.ClassesInserted++

		for _, item := range entry.StartingItems {
			if _, err := l.svc.AddStartingItem(ctx, created.ID, domain.StartingItem{Name: item.Name, Description: item.Description}); err != nil {
				return result, fmt.Errorf("seed starting item '%s' of '%s': %w", item.Name, entry.Name, err)
			}
			result.ItemsInserted++
		}
	}

	log.Info(LogMsgCatalogSynced,
		"inserted", result.ClassesInserted,
		"skipped", result.ClassesSkipped,
		"items", result.ItemsInserted)
	return result, nil
}

func (c CatalogClass) toClass() domain.RPGClass {
	skills := make([]domain.Skill, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, domain.Skill{Name: s.Name, Description: s.Description})
	}
	return domain.RPGClass{
		Name:           c.Name,
		Description:    c.Description,
		Stats:          c.Stats,
		Role:           domain.ClassRole(c.Role),
		ArmorType:      domain.ArmorType(c.ArmorType),
		Weapons:        c.Weapons,
		StartingWeapon: c.StartingWeapon,
		Skills:         skills,
	}
}

// LoadAndSync is the startup path: load, validate, then sync
func LoadAndSync(ctx context.Context, loader CatalogLoader, path string) (*SyncResult, error) {
	catalog, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(catalog); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "version", catalog.Version, "classes", len(catalog.Classes))
	return loader.Sync(ctx, catalog)
}
