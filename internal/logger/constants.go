package logger

// Log level names
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format names
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// RedactedValue replaces the value of any attribute listed in sensitiveKeys
const RedactedValue = "[REDACTED]"

// sensitiveKeys are attribute keys whose values never reach the log output
var sensitiveKeys = map[string]bool{
	"api_key":     true,
	"password":    true,
	"db_password": true,
	"x-api-key":   true,
}
