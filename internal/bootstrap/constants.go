package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of older files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting CharacterCreator"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	LogMsgSessionStoreReady   = "Session store ready"
)

// =============================================================================
// Seeding Messages
// =============================================================================

const (
	LogMsgSyncingCatalog   = "Syncing class catalog from YAML config..."
	LogMsgCatalogSynced    = "Class catalog synced successfully"
	LogMsgCatalogUnchanged = "Class catalog already present, sync skipped"
	LogMsgAdminEnsured     = "Administrator account ensured"
	LogMsgAdminSeedSkipped = "No administrator seed configured"

	ErrMsgFailedSyncCatalog = "failed to sync class catalog"
	ErrMsgFailedEnsureAdmin = "failed to ensure administrator account"
	ErrMsgUnknownStore      = "unknown session store %q"
	ErrMsgFailedRedis       = "failed to connect session redis"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingWorkers      = "Stopping background workers..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgCloseFailed          = "Failed to close resource"
)
