package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "An unexpected error occurred"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"

	ErrMsgNotAuthenticated = "Full authentication is required to access this resource"
	ErrMsgAccessDenied     = "Access is denied"
	ErrMsgLoginRequired    = "username or email is required"
)

// Success messages for API responses
const (
	MsgLoggedIn  = "Login successful"
	MsgLoggedOut = "Logout successful"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgServiceError        = "Service error"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
)
