package handler

// Messages returned to API clients. Internal error text never reaches the
// response body for 5xx statuses.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidTimeRange      = "from must be before to"
	ErrMsgSameCharacter         = "a and b must be different characters"

	ErrMsgCharacterNotFound = "Character not found"
	ErrMsgEntryNotFound     = "Ledger entry not found"

	ErrMsgDatabaseUnavailable = "database connection failed"
	ErrMsgStatTablesNotLoaded = "stat tables not loaded"

	ErrMsgExportFailed = "Failed to build export"
	ErrMsgQueueFull    = "Job queue is full, try again later"
)

// Success messages
const (
	MsgEntryDeleted        = "Ledger entry deleted"
	MsgCharacterIngested   = "Character ingested"
	MsgRecalibrationQueued = "Recalibration queued"
)
