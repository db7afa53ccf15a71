package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is bumped whenever .env.example gains a required key
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty for the server to start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// ValidateEnv checks that the required environment variables are set
// and that the .env schema version is current
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Tuning variables that silently fall back to their default when malformed
var (
	durationEnvVars = []string{"PROFILE_CACHE_TTL", "RECALIBRATE_INTERVAL", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME"}
	positiveIntVars = []string{"PROFILE_CACHE_SIZE", "RANKING_MIN_POPULATION", "DB_MAX_CONNS"}
)

// ValidateEnvWithWarnings runs ValidateEnv and also flags example values
// copied verbatim from .env.example, malformed tuning values and a missing
// stat table override
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	for _, key := range durationEnvVars {
		if v := os.Getenv(key); v != "" {
			if _, err := time.ParseDuration(v); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not a duration - the default will be used", key, v))
			}
		}
	}
	for _, key := range positiveIntVars {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err != nil || n <= 0 {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not a positive integer - the default will be used", key, v))
			}
		}
	}

	if path := os.Getenv("STAT_TABLE_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("STAT_TABLE_PATH %s is not readable: %v", path, err))
		}
	}

	return warnings, nil
}
