package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
)

// Log messages - catalog watcher
const (
	LogMsgCatalogChanged       = "Loot tables file changed, reloading"
	LogMsgCatalogReloaded      = "Loot tables reloaded"
	LogMsgCatalogStatFailed    = "Failed to stat loot tables file"
	ErrContextCatalogReloadJob = "catalog reload"
)
