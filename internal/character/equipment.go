package character

import (
	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/metrics"
)

// roleWeapons is the weapon granted to classes without a starting weapon.
// Damage classes get none.
var roleWeapons = map[domain.ClassRole]string{
	domain.ClassRoleTank:   "Shield",
	domain.ClassRoleHealer: "Staff",
	domain.ClassRoleMelee:  "Sword",
	domain.ClassRoleRanged: "Bow",
}

var armorNames = map[domain.ArmorType]string{
	domain.ArmorCloth:   "Traveler's Cloth Robe",
	domain.ArmorLeather: "Traveler's Leather Vest",
	domain.ArmorPlate:   "Traveler's Armor",
}

// grantedItem is an inventory item plus the source it is counted under
type grantedItem struct {
	item   domain.InventoryItem
	source string
}

// defaultWeapon returns the class starting weapon, or the role weapon when
// the class has none
func defaultWeapon(class *domain.RPGClass) (domain.InventoryItem, bool) {
	if class.StartingWeapon != "" {
		return domain.InventoryItem{Name: class.StartingWeapon, Description: StartingWeaponDescription}, true
	}
	weapon, ok := roleWeapons[class.Role]
	if !ok {
		return domain.InventoryItem{}, false
	}
	return domain.InventoryItem{Name: RoleWeaponPrefix + weapon, Description: RoleWeaponDescription}, true
}

// defaultArmor maps the armor type to a basic armor piece. Unknown types get
// plain clothes; classes without an armor type get nothing.
func defaultArmor(class *domain.RPGClass) (domain.InventoryItem, bool) {
	if class.ArmorType == domain.ArmorNone {
		return domain.InventoryItem{}, false
	}
	name, ok := armorNames[class.ArmorType]
	if !ok {
		name = GenericArmorName
	}
	return domain.InventoryItem{Name: name, Description: ArmorDescription}, true
}

// startingInventory builds every item a new character of class receives:
// the selected starting items first, then weapon, then armor
func startingInventory(class *domain.RPGClass, selections []ItemSelection) []grantedItem {
	items := make([]grantedItem, 0, len(selections)+2)
	for _, sel := range selections {
		if !sel.valid() {
			continue
		}
		items = append(items, grantedItem{
			item:   domain.InventoryItem{Name: sel.Name, Description: sel.Description},
			source: metrics.ItemSourceStarting,
		})
	}
	if weapon, ok := defaultWeapon(class); ok {
		items = append(items, grantedItem{item: weapon, source: metrics.ItemSourceWeapon})
	}
	if armor, ok := defaultArmor(class); ok {
		items = append(items, grantedItem{item: armor, source: metrics.ItemSourceArmor})
	}
	return items
}
