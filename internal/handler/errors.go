package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidSessionID  = "Invalid session ID"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Loot error messages
	ErrMsgGetChancesFailed = "Failed to compute loot chances"
	ErrMsgGetChestsFailed  = "Failed to list chest types"

	// Admin error messages
	ErrMsgReloadCatalogFailed = "Failed to reload loot tables"
)

// Success messages for API responses
const (
	MsgSessionResetSuccess    = "Session reset successfully"
	MsgSessionEndedSuccess    = "Session ended"
	MsgCatalogReloadedSuccess = "Loot tables reloaded successfully"
)

// Operation names used in logs
const (
	OpCreateSession = "Create session"
	OpEndSession    = "End session"
	OpOpenChest     = "Open chest"
	OpRoll          = "Roll"
	OpGetStats      = "Get stats"
	OpResetSession  = "Reset session"
	OpGetHistory    = "Get history"
	OpGetChances    = "Get chances"
	OpGetChests     = "Get chests"
	OpReloadCatalog = "Reload catalog"
)

// URL parameters
const (
	URLParamSessionID = "id"
	QueryParamLimit   = "limit"
)
