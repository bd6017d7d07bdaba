package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting LootDrop"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Catalog and storage messages
const (
	LogMsgUsingDefaultCatalog = "No loot tables path configured, using compiled-in catalog"
	LogMsgStorageInitialized  = "Drop history storage initialized"
	ErrMsgFailedLoadCatalog   = "failed to load loot tables"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
	ErrMsgUnknownStorage      = "unknown storage backend"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)

// Catalog watcher
const (
	CatalogWatcherJobName   = "catalog-watch"
	LogMsgCatalogWatchStart = "Watching loot tables for changes"
)
