package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// ForEnvironment returns the defaults for an environment. Production and
// staging log JSON at info; everything else logs text at debug with source
// locations.
func ForEnvironment(env string) Config {
	cfg := Config{
		Level:       LevelDebug,
		Format:      FormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: env,
		AddSource:   true,
	}
	switch env {
	case EnvironmentProduction, EnvironmentStaging:
		cfg.Level = LevelInfo
		cfg.Format = FormatJSON
		cfg.AddSource = false
	case EnvironmentTest:
		cfg.AddSource = false
	case "":
		cfg.Environment = EnvironmentDev
	}
	return cfg
}

// NewConfig layers explicit values over the environment defaults. Empty
// arguments keep the default.
func NewConfig(level, format, serviceName, version, environment string) Config {
	cfg := ForEnvironment(environment)
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	if serviceName != "" {
		cfg.ServiceName = serviceName
	}
	if version != "" {
		cfg.Version = version
	}
	return cfg
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
