package character

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func TestDefaultWeapon(t *testing.T) {
	tests := []struct {
		name   string
		class  domain.RPGClass
		want   string
		wantOK bool
	}{
		{"starting weapon wins", domain.RPGClass{Role: domain.ClassRoleTank, StartingWeapon: "Tower Shield"}, "Tower Shield", true},
		{"tank", domain.RPGClass{Role: domain.ClassRoleTank}, "Traveler's Shield", true},
		{"healer", domain.RPGClass{Role: domain.ClassRoleHealer}, "Traveler's Staff", true},
		{"melee", domain.RPGClass{Role: domain.ClassRoleMelee}, "Traveler's Sword", true},
		{"ranged", domain.RPGClass{Role: domain.ClassRoleRanged}, "Traveler's Bow", true},
		{"damage gets none", domain.RPGClass{Role: domain.ClassRoleDamage}, "", false},
		{"no role", domain.RPGClass{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := defaultWeapon(&tt.class)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, item.Name)
		})
	}
}

func TestDefaultArmor(t *testing.T) {
	tests := []struct {
		armor  domain.ArmorType
		want   string
		wantOK bool
	}{
		{domain.ArmorCloth, "Traveler's Cloth Robe", true},
		{domain.ArmorLeather, "Traveler's Leather Vest", true},
		{domain.ArmorPlate, "Traveler's Armor", true},
		{domain.ArmorType("chainmail"), GenericArmorName, true},
		{domain.ArmorNone, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.armor), func(t *testing.T) {
			item, ok := defaultArmor(&domain.RPGClass{ArmorType: tt.armor})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, item.Name)
			if ok {
				assert.Equal(t, ArmorDescription, item.Description)
			}
		})
	}
}

func TestStartingInventory_FiltersAndOrders(t *testing.T) {
	class := &domain.RPGClass{Role: domain.ClassRoleRanged, ArmorType: domain.ArmorLeather}
	items := startingInventory(class, []ItemSelection{
		{Name: "Rope", Description: "Fifty feet"},
		{Name: "Torch"},
		{Name: " ", Description: "nameless"},
	})

	names := make([]string, 0, len(items))
	for _, g := range items {
		names = append(names, g.item.Name)
	}
	assert.Equal(t, []string{"Rope", "Traveler's Bow", "Traveler's Leather Vest"}, names)
	assert.Equal(t, "starting_item", items[0].source)
}
