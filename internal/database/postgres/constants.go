package postgres

// Error messages
const (
	ErrMsgEncodeSheetFailed = "failed to encode character sheet: %w"
	ErrMsgDecodeSheetFailed = "failed to decode character sheet for %s: %w"
	ErrMsgUpsertCharacter   = "failed to upsert character: %w"
	ErrMsgGetCharacter      = "failed to get character: %w"
	ErrMsgQueryCharacters   = "failed to query characters: %w"
	ErrMsgScanCharacter     = "failed to scan character: %w"
	ErrMsgInsertEntry       = "failed to insert ledger entry: %w"
	ErrMsgDeleteEntry       = "failed to delete ledger entry: %w"
	ErrMsgQueryEntries      = "failed to query ledger entries: %w"
	ErrMsgScanEntry         = "failed to scan ledger entry: %w"
	ErrMsgInvalidEntryID    = "invalid ledger entry id: %w"
)

// PgErrorCodeForeignKeyViolation is raised when a ledger entry names an unknown character
const PgErrorCodeForeignKeyViolation = "23503"
