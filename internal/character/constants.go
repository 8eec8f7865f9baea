package character

// ============================================================================
// Default Equipment
// ============================================================================

const (
	StartingWeaponDescription = "Class starting weapon."
	RoleWeaponDescription     = "Basic weapon for your role."
	ArmorDescription          = "Basic armor for your class."

	// RoleWeaponPrefix is prepended to the weapon a role grants
	RoleWeaponPrefix = "Traveler's "
	GenericArmorName = "Traveler's Clothes"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgNameRequired  = "character name must not be blank"
	ErrMsgLevelTooLow   = "level must be at least 1"
	ErrMsgClassRequired = "class name must not be blank"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCharacterCreated = "Character created"
	LogMsgCharacterUpdated = "Character updated"
	LogMsgCharacterDeleted = "Character deleted"
	LogMsgItemAdded        = "Inventory item added"
	LogMsgItemSkipped      = "Starting item without name or description skipped"

	LogErrFailedToCreate = "Failed to create character"
	LogErrFailedToUpdate = "Failed to update character"
)
