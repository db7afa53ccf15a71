package ranking

// DefaultMinPopulation is the smallest population a grade scale is derived from
const DefaultMinPopulation = 50

// Leaderboard limits
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// JobNameRecalibrate names the scheduled recalibration in logs
const JobNameRecalibrate = "ranking.recalibrate"

// UnclassedLabel groups characters with no class in the tier list
const UnclassedLabel = "unknown"

// Error messages
const (
	ErrMsgLoadPopulationFailed = "failed to load ranking population: %w"
	ErrMsgApplyScaleFailed     = "failed to apply grade scale: %w"
)

// Log messages
const (
	LogMsgRecalibrateStarting = "Starting grade recalibration"
	LogMsgRecalibrateSkipped  = "Grade recalibration skipped, population too small"
	LogMsgRecalibrateApplied  = "Grade scale recalibrated"
	LogMsgRecalibrateFailed   = "Grade recalibration failed"
)

// Log field keys
const (
	LogFieldPopulation    = "population"
	LogFieldMinPopulation = "min_population"
	LogFieldScale         = "scale"
	LogFieldDuration      = "duration"
	LogFieldError         = "error"
)
