package lootpool

// LootTablesSchemaName is the registered name of the embedded catalog schema.
const LootTablesSchemaName = "loot_tables.schema.json"

// CatalogVersion is the expected version string of catalog files.
const CatalogVersion = "1.0"

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read loot catalog file"
	ErrContextFailedToParseCatalog = "failed to parse loot catalog"
	ErrContextUnsupportedFormat    = "unsupported loot catalog format"
)

// Log messages
const (
	LogMsgCatalogLoaded       = "Loot catalog loaded"
	LogMsgDefaultChestAdded   = "Catalog has no normal chest, using default"
	LogMsgUnknownOverrideName = "Chest override references an entry not in any pool"
)

// Log field keys for structured logging
const (
	LogFieldPath  = "path"
	LogFieldPools = "pools"
	LogFieldChest = "chest"
	LogFieldEntry = "entry"
)
