package config

import "time"

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "aion2-tracker"
	DefaultVersion     = "dev"
	DefaultLogDir      = "logs"

	DefaultDBUser = "postgres"
	DefaultDBHost = "localhost"
	DefaultDBPort = "5432"
	DefaultDBName = "aion2"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultProfileCacheSize     = 2048
	DefaultProfileCacheTTL      = 10 * time.Minute
	DefaultRecalibrateInterval  = 1 * time.Hour
	DefaultRankingMinPopulation = 50
)
