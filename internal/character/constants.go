package character

import "time"

// Cache defaults, overridden by PROFILE_CACHE_SIZE / PROFILE_CACHE_TTL
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// Validation limits
const (
	MaxNameLength   = 100
	MaxServerLength = 50
	MaxClassLength  = 50
	MaxLevel        = 100
)

// Error messages
const (
	ErrMsgServerRequired  = "server is required"
	ErrMsgNameRequired    = "name is required"
	ErrMsgFieldTooLong    = "%s exceeds %d characters"
	ErrMsgLevelOutOfRange = "level must be between 0 and %d"
	ErrMsgSaveFailed      = "failed to save character: %w"
	ErrMsgLoadFailed      = "failed to load character %s: %w"
	ErrMsgListFailed      = "failed to list characters: %w"
)

// Log messages
const (
	LogMsgIngested       = "Character snapshot stored"
	LogMsgProfileCached  = "Profile served from cache"
	LogMsgProfileBuilt   = "Profile evaluated"
	LogMsgCompared       = "Characters compared"
	LogMsgIngestRejected = "Character snapshot rejected"
)

// Log field keys
const (
	LogFieldCharacterID = "character_id"
	LogFieldScore       = "score"
	LogFieldGrade       = "grade"
	LogFieldError       = "error"
	LogFieldOther       = "other_id"
)
