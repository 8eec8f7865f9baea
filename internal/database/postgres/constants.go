package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"

	// PgErrorCodeStringTooLong is raised when a value exceeds its VARCHAR width
	PgErrorCodeStringTooLong = "22001"
)

// AppendSkillAttempts bounds the retries of a skill append that lost the
// position race
const AppendSkillAttempts = 3

// Constraint and index names referenced when translating violations
const (
	ConstraintUsersUsername  = "idx_users_username"
	ConstraintUsersEmail     = "idx_users_email"
	ConstraintClassNameLower = "idx_rpg_classes_name_lower"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser  = "failed to insert user"
	ErrMsgFailedToGetUser     = "failed to get user"
	ErrMsgFailedToListUsers   = "failed to list users"
	ErrMsgFailedToUpdateUser  = "failed to update user"
	ErrMsgFailedToDeleteUser  = "failed to delete user"
	ErrMsgFailedToUpsertRole  = "failed to upsert role"
	ErrMsgFailedToAssignRole  = "failed to assign role"
	ErrMsgFailedToCheckExists = "failed to check existence"
)

// Error Messages - Class Operations
const (
	ErrMsgFailedToInsertClass        = "failed to insert class"
	ErrMsgFailedToGetClass           = "failed to get class"
	ErrMsgFailedToListClasses        = "failed to list classes"
	ErrMsgFailedToUpdateClass        = "failed to update class"
	ErrMsgFailedToDeleteClass        = "failed to delete class"
	ErrMsgFailedToGetStartingItems   = "failed to get starting items"
	ErrMsgFailedToInsertStartingItem = "failed to insert starting item"
)

// Error Messages - Skill Operations
const (
	ErrMsgFailedToInsertSkill = "failed to insert skill"
	ErrMsgFailedToGetSkill    = "failed to get skill"
	ErrMsgFailedToListSkills  = "failed to list skills"
	ErrMsgFailedToDeleteSkill = "failed to delete skill"
	ErrMsgFailedToLinkSkill   = "failed to link skill to character"
	ErrMsgSkillPositionTaken  = "skill list of character %d changed concurrently"
)

// Error Messages - Character Operations
const (
	ErrMsgFailedToInsertCharacter = "failed to insert character"
	ErrMsgFailedToGetCharacter    = "failed to get character"
	ErrMsgFailedToListCharacters  = "failed to list characters"
	ErrMsgFailedToCountCharacters = "failed to count characters"
	ErrMsgFailedToUpdateCharacter = "failed to update character"
	ErrMsgFailedToDeleteCharacter = "failed to delete character"
	ErrMsgFailedToInsertItem      = "failed to insert inventory item"
	ErrMsgFailedToListInventory   = "failed to list inventory"
)

// Error Messages - Session Operations
const (
	ErrMsgFailedToSaveSession   = "failed to save session"
	ErrMsgFailedToGetSession    = "failed to get session"
	ErrMsgFailedToDeleteSession = "failed to delete session"
	ErrMsgFailedToPurgeSessions = "failed to delete expired sessions"
)
