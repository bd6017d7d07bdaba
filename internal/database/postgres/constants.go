package postgres

// Error Messages - Drop History Operations
const (
	ErrMsgFailedToInsertOpening  = "failed to insert chest opening"
	ErrMsgFailedToQueryOpenings  = "failed to query chest openings"
	ErrMsgFailedToScanOpening    = "failed to scan chest opening"
	ErrMsgFailedToCountRarities  = "failed to count rarities"
	ErrMsgFailedToDeleteOpenings = "failed to delete chest openings"
)
