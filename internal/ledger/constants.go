package ledger

import "time"

// DefaultWindow is used when a query gives no start time
const DefaultWindow = 30 * 24 * time.Hour

// MaxAmount bounds the magnitude of a single entry
const MaxAmount int64 = 1_000_000_000_000

// MaxNoteLength bounds the free-text note
const MaxNoteLength = 200

// dayLayout formats UTC day keys
const dayLayout = "2006-01-02"

// Error messages
const (
	ErrMsgAmountZero        = "amount must not be zero"
	ErrMsgAmountOutOfRange  = "amount must be between -%d and %d"
	ErrMsgUnknownCategory   = "unknown category %q"
	ErrMsgNoteTooLong       = "note exceeds %d characters"
	ErrMsgCharacterRequired = "character_id is required"
	ErrMsgInvalidRange      = "from must be before to"
	ErrMsgInvalidEntryID    = "invalid entry id %q"
	ErrMsgRecordFailed      = "failed to record ledger entry: %w"
	ErrMsgDeleteFailed      = "failed to delete ledger entry %s: %w"
	ErrMsgListFailed        = "failed to list ledger entries: %w"
)

// Log messages
const (
	LogMsgEntryRecorded = "Ledger entry recorded"
	LogMsgEntryDeleted  = "Ledger entry deleted"
)

// Log field keys
const (
	LogFieldEntryID     = "entry_id"
	LogFieldCharacterID = "character_id"
	LogFieldCategory    = "category"
	LogFieldAmount      = "amount"
)
