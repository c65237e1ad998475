package configs

import (
	"context"
	"log/slog"
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "COMPUTE_API_URL", "COMPUTE_TIMEOUT_SEC", "DB_ENABLED", "MQTT_BROKER", "MQTT_QOS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.App.Port != "8080" {
		t.Fatalf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Compute.URL != "https://control-system-mtxi.onrender.com/api/compute" {
		t.Fatalf("Compute.URL = %q", cfg.Compute.URL)
	}
	if cfg.Compute.Timeout != 0 {
		t.Fatalf("Compute.Timeout = %v, want 0", cfg.Compute.Timeout)
	}
	if cfg.Database.Enabled {
		t.Fatalf("Database.Enabled = true, want false")
	}
	if cfg.MQTT.Broker != "" || cfg.MQTT.QoS != 1 {
		t.Fatalf("MQTT = %+v", cfg.MQTT)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("COMPUTE_API_URL", "http://localhost:9000/api/compute")
	t.Setenv("COMPUTE_TIMEOUT_SEC", "15")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("MQTT_QOS", "not-a-number")
	t.Setenv("CORS_ORIGINS", " http://a.example , ,http://b.example")

	cfg := LoadConfig()
	if cfg.Compute.URL != "http://localhost:9000/api/compute" {
		t.Fatalf("Compute.URL = %q", cfg.Compute.URL)
	}
	if cfg.Compute.Timeout != 15*time.Second {
		t.Fatalf("Compute.Timeout = %v, want 15s", cfg.Compute.Timeout)
	}
	if !cfg.Database.Enabled {
		t.Fatalf("Database.Enabled = false, want true")
	}
	if cfg.MQTT.QoS != 1 {
		t.Fatalf("MQTT.QoS = %d, want fallback 1", cfg.MQTT.QoS)
	}
	want := []string{"http://a.example", "http://b.example"}
	if !reflect.DeepEqual(cfg.App.CORSOrigins, want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.App.CORSOrigins, want)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitLoggerSetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLogger("production", "warn")

	ctx := context.Background()
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info enabled at warn level")
	}
	if !slog.Default().Enabled(ctx, slog.LevelWarn) {
		t.Fatalf("warn disabled at warn level")
	}
}
