package domain

// RPGClass is the template a character is built from.
type RPGClass struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"max=100"`
	Description string `json:"description"`
	Stats
	Role           ClassRole `json:"role" validate:"max=20"`
	ArmorType      ArmorType `json:"armorType" validate:"max=50"`
	Weapons        []string  `json:"weapons"`
	StartingWeapon string    `json:"startingWeapon" validate:"max=100"`
	Skills         []Skill   `json:"skills" validate:"omitempty,dive"`
}

// SkillIDs returns the set of skill ids the class offers
func (c *RPGClass) SkillIDs() map[int64]bool {
	ids := make(map[int64]bool, len(c.Skills))
	for _, s := range c.Skills {
		ids[s.ID] = true
	}
	return ids
}

// Skill belongs to exactly one class.
type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"max=100"`
	Description string `json:"description"`
	ClassID     int64  `json:"classId,omitempty"`
}

// StartingItem is a class-level item template offered during character creation.
type StartingItem struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClassID     int64  `json:"-"`
}

// ClassPatch carries a selective update to a class. Nil strings and empty
// weapon lists leave the stored value alone; Stats always overwrite.
type ClassPatch struct {
	ID             int64    `json:"id"`
	Name           *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description    *string  `json:"description,omitempty"`
	Role           *string  `json:"role,omitempty" validate:"omitempty,max=20"`
	ArmorType      *string  `json:"armorType,omitempty" validate:"omitempty,max=50"`
	StartingWeapon *string  `json:"startingWeapon,omitempty" validate:"omitempty,max=100"`
	Weapons        []string `json:"weapons,omitempty"`
	Stats
}
