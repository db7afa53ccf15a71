package combat

// Error messages
const (
	ErrMsgReadTablesFailed   = "failed to read stat tables: %w"
	ErrMsgDecodeTablesFailed = "failed to decode stat tables: %w"
	ErrMsgUnknownBucket      = "unknown bucket %q in %s"
	ErrMsgNegativeCap        = "cap for %q must be positive (soft=%v hard=%v)"
	ErrMsgSoftAboveHard      = "soft cap for %q exceeds hard cap (soft=%v hard=%v)"
	ErrMsgRateOutOfRange     = "rate for %q must be in (0,1], got %v"
	ErrMsgNegativeWeight     = "weight for %s must not be negative, got %v"
	ErrMsgNegativeBoardStat  = "board %q stat %q must not be negative, got %v"
	ErrMsgGradeOrder         = "grade thresholds must satisfy S >= A >= B >= 0 (S=%v A=%v B=%v)"
	ErrMsgDuplicateAlias     = "stat %q is mapped to both %s and %s"
)

// Grade percentiles used when deriving a grade scale from a score population.
const (
	PercentileGradeS = 95.0
	PercentileGradeA = 75.0
	PercentileGradeB = 40.0
)

// MaxStatTotal bounds every per-stat flat or percent total. Larger
// contributions saturate so bucket totals stay finite.
const MaxStatTotal = 1e15

// DefaultTablesFile is the embedded stat table.
const DefaultTablesFile = "tables.yaml"
