package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Log file rotation
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting aion2-tracker"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory: %w"
	ErrMsgFailedOpenLogFile   = "failed to open log file: %w"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Stat table loading
const (
	LogMsgStatTableLoaded     = "Stat table loaded"
	ErrMsgFailedLoadStatTable = "failed to load stat table: %w"
	statTableEmbedded         = "embedded"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgDrainingWorkers      = "Draining worker pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
