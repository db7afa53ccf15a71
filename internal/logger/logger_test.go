package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	// Log a test message
	Info("test message", "key", "value", "number", 42)

	// Parse JSON output
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	// Verify base attributes
	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	// Verify message
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	// Verify level
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	// Verify custom attributes
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}

	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	if GetRequestID(context.Background()) != "" {
		t.Error("Expected empty request_id without one in context")
	}

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)
	FromContext(ctx).Info("scoped")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "test-req-123" {
		t.Errorf("Expected request_id attribute, got %v", logEntry["request_id"])
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel().String(); got != want {
			t.Errorf("level %q: expected %s, got %s", in, want, got)
		}
	}
}

func TestForEnvironment(t *testing.T) {
	prod := ForEnvironment(EnvironmentProduction)
	if prod.Format != FormatJSON || prod.Level != LevelInfo || prod.AddSource {
		t.Errorf("unexpected prod defaults: %+v", prod)
	}

	dev := ForEnvironment("")
	if dev.Environment != EnvironmentDev {
		t.Errorf("Expected empty environment to default to dev, got %s", dev.Environment)
	}
	if dev.Format != FormatText || dev.Level != LevelDebug || !dev.AddSource {
		t.Errorf("unexpected dev defaults: %+v", dev)
	}

	if ForEnvironment(EnvironmentTest).AddSource {
		t.Error("Expected AddSource=false in test")
	}
}

func TestNewConfig_OverridesDefaults(t *testing.T) {
	cfg := NewConfig("warn", "", "", "2.1.0", EnvironmentProduction)

	if cfg.Level != "warn" {
		t.Errorf("Expected explicit level to win, got %s", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Expected prod format default, got %s", cfg.Format)
	}
	if cfg.ServiceName != DefaultServiceName {
		t.Errorf("Expected default service name, got %s", cfg.ServiceName)
	}
	if cfg.Version != "2.1.0" {
		t.Errorf("Expected version 2.1.0, got %s", cfg.Version)
	}
}

func TestForJob(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx, log := ForJob(context.Background(), "ranking.recalibrate")
	log.Info("job ran")

	if GetRequestID(ctx) == "" {
		t.Fatal("Expected a request id on the job context")
	}

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["job"] != "ranking.recalibrate" {
		t.Errorf("Expected job attribute, got %v", logEntry["job"])
	}
	if logEntry["request_id"] != GetRequestID(ctx) {
		t.Errorf("Expected request_id %s, got %v", GetRequestID(ctx), logEntry["request_id"])
	}
}
