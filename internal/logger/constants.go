package logger

// Attribute keys stamped on records
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// LevelWarningAlias is accepted in LOG_LEVEL next to the slog level names
const LevelWarningAlias = "warning"
