package domain

// Character creation rules
const (
	// MaxStat is the upper bound applied to every class stat on save
	MaxStat = 5

	// StartingLevel is the level assigned to newly created characters
	StartingLevel = 1

	// RequiredSkillCount is the exact number of skills a new character selects
	RequiredSkillCount = 3

	// MaxStartingItems is the maximum number of starting items a new character may pick
	MaxStartingItems = 3
)

// Account roles
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// UnknownUsername is reported in character projections whose owner is missing
const UnknownUsername = "unknown"

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
