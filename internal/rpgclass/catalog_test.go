package rpgclass

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/mocks"
)

const testCatalog = `
version: "test"
classes:
  - name: Warrior
    description: Hits things
    stats: {strength: 9, constitution: 4}
    role: melee
    armorType: plate
    weapons: [Sword]
    skills:
      - {name: Cleave, description: Wide swing}
    startingItems:
      - {name: Whetstone, description: Sharpens}
  - name: Mage
    role: damage
    armorType: cloth
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCatalogLoader_Load(t *testing.T) {
	loader := NewCatalogLoader(new(mocks.MockClassRepository))

	catalog, err := loader.Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	require.Len(t, catalog.Classes, 2)

	warrior := catalog.Classes[0]
	assert.Equal(t, "Warrior", warrior.Name)
	assert.Equal(t, 9, warrior.Stats.Strength)
	assert.Equal(t, "plate", warrior.ArmorType)
	assert.Equal(t, []CatalogEntry{{Name: "Whetstone", Description: "Sharpens"}}, warrior.StartingItems)
	require.NoError(t, loader.Validate(catalog))

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loader.Load(writeCatalog(t, "classes: [unterminated"))
	assert.Error(t, err)

	_, err = loader.Load(writeCatalog(t, "classes:\n  - name: Rogue\n    stats: {luck: 3}\n"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "/classes/0/stats")
}

func TestCatalogLoader_Validate(t *testing.T) {
	loader := NewCatalogLoader(new(mocks.MockClassRepository))

	tests := []struct {
		name    string
		catalog *Catalog
	}{
		{"nil", nil},
		{"blank name", &Catalog{Classes: []CatalogClass{{Name: " "}}}},
		{"duplicate ignoring case", &Catalog{Classes: []CatalogClass{{Name: "Mage"}, {Name: "MAGE"}}}},
		{"unknown role", &Catalog{Classes: []CatalogClass{{Name: "Bard", Role: "support"}}}},
		{"blank skill", &Catalog{Classes: []CatalogClass{{Name: "Bard", Skills: []CatalogEntry{{}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, loader.Validate(tt.catalog), ErrInvalidCatalog)
		})
	}
}

func TestCatalogLoader_SyncInsertsOnlyMissing(t *testing.T) {
	repo := new(mocks.MockClassRepository)
	loader := NewCatalogLoader(repo)

	repo.On("GetClassByName", mock.Anything, "Warrior").Return(nil, domain.ErrClassNotFound)
	repo.On("GetClassByName", mock.Anything, "Mage").Return(&domain.RPGClass{ID: 2, Name: "Mage"}, nil)
	repo.On("CreateClass", mock.Anything, mock.MatchedBy(func(c *domain.RPGClass) bool {
		return c.Name == "Warrior" && c.Strength == domain.MaxStat && len(c.Skills) == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.RPGClass).ID = 1
	}).Return(nil)
	repo.On("AddStartingItem", mock.Anything, mock.MatchedBy(func(it *domain.StartingItem) bool {
		return it.ClassID == 1 && it.Name == "Whetstone"
	})).Return(nil)

	result, err := LoadAndSync(context.Background(), loader, writeCatalog(t, testCatalog))
	require.NoError(t, err)
	assert.Equal(t, &SyncResult{ClassesInserted: 1, ClassesSkipped: 1, ItemsInserted: 1}, result)
	repo.AssertExpectations(t)
}

func TestShippedCatalogIsValid(t *testing.T) {
	loader := NewCatalogLoader(new(mocks.MockClassRepository))
	catalog, err := loader.Load(filepath.Join("..", "..", "configs", "classes.yaml"))
	require.NoError(t, err)
	require.NoError(t, loader.Validate(catalog))

	for _, c := range catalog.Classes {
		assert.GreaterOrEqual(t, len(c.Skills), domain.RequiredSkillCount, c.Name)
		for _, s := range c.Skills {
			assert.NotEmpty(t, s.Description, "%s/%s", c.Name, s.Name)
			assert.True(t, strings.HasSuffix(s.Description, "."), "%s/%s description truncated: %q", c.Name, s.Name, s.Description)
		}
	}
}

func TestCatalogClassToClass(t *testing.T) {
	entry := CatalogClass{
		Name:           "Ranger",
		Description:    "Scout",
		Stats:          domain.Stats{Dexterity: 5, Wisdom: 2},
		Role:           "ranged",
		ArmorType:      "leather",
		Weapons:        []string{"Bow"},
		StartingWeapon: "Yew Longbow",
		Skills:         []CatalogEntry{{Name: "Aim", Description: "Steady shot"}},
		StartingItems:  []CatalogEntry{{Name: "Quiver"}},
	}

	want := domain.RPGClass{
		Name:           "Ranger",
		Description:    "Scout",
		Stats:          domain.Stats{Dexterity: 5, Wisdom: 2},
		Role:           domain.ClassRole("ranged"),
		ArmorType:      domain.ArmorType("leather"),
		Weapons:        []string{"Bow"},
		StartingWeapon: "Yew Longbow",
		Skills:         []domain.Skill{{Name: "Aim", Description: "Steady shot"}},
	}
	if diff := cmp.Diff(want, entry.toClass()); diff != "" {
		t.Errorf("toClass() mismatch (-want +got):\n%s", diff)
	}
}
