package simulator

// Input bounds
const (
	DefaultMultiplier  = 1.0
	DefaultRarityBoost = 1.0
	// MaxRolls caps a caller supplied batch ceiling
	MaxRolls = 100
	// MaxRarityBoost caps how far rare+ weights can be scaled
	MaxRarityBoost = 100.0
)

// Error context messages
const (
	ErrContextMultiplier  = "multiplier must be greater than zero"
	ErrContextRarityBoost = "rarity boost must be at least 1"
	ErrContextBoostTooBig = "rarity boost is too large"
	ErrContextMaxRolls    = "max must be between 0 and 100"
	ErrContextNoCatalog   = "no catalog path configured"
)

// Log messages
const (
	LogMsgSessionCreated      = "Session created"
	LogMsgSessionReset        = "Session reset"
	LogMsgSessionEnded        = "Session ended"
	LogMsgChestOpened         = "Chest opened"
	LogMsgLootRolled          = "Loot rolled"
	LogMsgUnknownChest        = "Unknown chest type, using default"
	LogMsgHistoryWriteFailed  = "Failed to record chest opening"
	LogMsgHistoryDeleteFailed = "Failed to clear session history"
	LogMsgCatalogReloaded     = "Catalog reloaded"
	LogMsgCatalogReloadFailed = "Catalog reload failed"
)

// Log field names
const (
	LogFieldSessionID = "session_id"
	LogFieldChestType = "chest_type"
	LogFieldRequested = "requested_chest"
	LogFieldItems     = "items"
	LogFieldItem      = "item"
	LogFieldDraws     = "draws"
	LogFieldRollCount = "roll_count"
	LogFieldPath      = "path"
	LogFieldPools     = "pools"
	LogFieldError     = "error"
)
