package logger

const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

const (
	DefaultServiceName = "aion2-tracker"
	DefaultVersion     = "dev"
)

// Environments recognised by ForEnvironment. Anything else is treated as dev.
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys shared by every package that logs
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyJob         = "job"
)
