package domain

// Character is a user-owned instance of a class.
type Character struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Level      int    `json:"level"`
	Stats
	UserID    int64           `json:"userId"`
	ClassID   int64           `json:"classId"`
	SkillIDs  []int64         `json:"skillIds"`
	Inventory []InventoryItem `json:"inventory"`
}

// InventoryItem is owned by exactly one character and deleted with it.
type InventoryItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CharacterID int64  `json:"characterId"`
}

// CharacterDetail is the flattened read-side projection of a character joined
// with its class, owner, skills and inventory.
type CharacterDetail struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Level      int    `json:"level"`
	Stats
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	ClassName string    `json:"className"`
	Role      ClassRole `json:"role"`
	ArmorType ArmorType `json:"armorType"`
	Weapons   []string  `json:"weapons"`
	Skills    []string  `json:"skills"`
	Inventory []string  `json:"inventory"`
}

// CharacterPatch is a selective update; nil fields are left untouched.
// SkillIDs, when non-nil, replaces the whole skill set.
type CharacterPatch struct {
	Name         *string `json:"name,omitempty"`
	Background   *string `json:"background,omitempty"`
	Level        *int    `json:"level,omitempty"`
	Strength     *int    `json:"strength,omitempty"`
	Dexterity    *int    `json:"dexterity,omitempty"`
	Intelligence *int    `json:"intelligence,omitempty"`
	Constitution *int    `json:"constitution,omitempty"`
	Wisdom       *int    `json:"wisdom,omitempty"`
	Charisma     *int    `json:"charisma,omitempty"`
	ClassName    *string `json:"className,omitempty"`
	SkillIDs     []int64 `json:"skillIds,omitempty"`
}

// Apply copies every present field of p onto c. Class and skill changes are
// resolved by the caller because they need repository lookups.
func (p CharacterPatch) Apply(c *Character) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Background != nil {
		c.Background = *p.Background
	}
	if p.Level != nil {
		c.Level = *p.Level
	}
	if p.Strength != nil {
		c.Strength = *p.Strength
	}
	if p.Dexterity != nil {
		c.Dexterity = *p.Dexterity
	}
	if p.Intelligence != nil {
		c.Intelligence = *p.Intelligence
	}
	if p.Constitution != nil {
		c.Constitution = *p.Constitution
	}
	if p.Wisdom != nil {
		c.Wisdom = *p.Wisdom
	}
	if p.Charisma != nil {
		c.Charisma = *p.Charisma
	}
}
