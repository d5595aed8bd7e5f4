package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.GRPCAddr != ":50051" {
		t.Fatalf("default grpc addr: %q", cfg.GRPCAddr)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default http addr: %q", cfg.HTTPAddr)
	}
	if cfg.FeaturesFile != "" {
		t.Fatalf("default features file should be empty (embedded dataset)")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("default log config: %+v", cfg.Log)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("empty path should yield defaults: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "waymark.json")
	data := []byte(`{"grpcAddr":":6000","featuresFile":"/tmp/features.json","watchFeatures":true,"log":{"level":"debug"}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GRPCAddr != ":6000" {
		t.Fatalf("expected :6000, got %q", cfg.GRPCAddr)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unset fields should keep defaults, got %q", cfg.HTTPAddr)
	}
	if !cfg.WatchFeatures || cfg.FeaturesFile != "/tmp/features.json" {
		t.Fatalf("features: %+v", cfg)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level: %q", cfg.Log.Level)
	}
}

func TestLoadRejectsYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "waymark.yaml")
	if err := os.WriteFile(file, []byte("grpcAddr: :6000\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatal("expected yaml rejection")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"WAYMARK_GRPC_ADDR":      ":7001",
		"WAYMARK_HTTP_ADDR":      ":7002",
		"WAYMARK_FEATURES_FILE":  "/opt/features.json",
		"WAYMARK_WATCH_FEATURES": "true",
		"WAYMARK_LOG_LEVEL":      "debug",
		"WAYMARK_LOG_FORMAT":     "json",
	}
	getenv = func(key string) string { return env[key] }
	t.Cleanup(func() { getenv = os.Getenv })

	cfg := Default()
	FromEnv(&cfg)
	if cfg.GRPCAddr != ":7001" || cfg.HTTPAddr != ":7002" {
		t.Fatalf("addr overlay: %+v", cfg)
	}
	if cfg.FeaturesFile != "/opt/features.json" || !cfg.WatchFeatures {
		t.Fatalf("features overlay: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log overlay: %+v", cfg.Log)
	}
}

func TestFromEnvIgnoresBadBool(t *testing.T) {
	getenv = func(key string) string {
		if key == "WAYMARK_WATCH_FEATURES" {
			return "sometimes"
		}
		return ""
	}
	t.Cleanup(func() { getenv = os.Getenv })

	cfg := Default()
	FromEnv(&cfg)
	if cfg.WatchFeatures {
		t.Fatal("unparseable bool should leave the default")
	}
}

func TestFromEnvEmptyKeepsConfig(t *testing.T) {
	getenv = func(string) string { return "" }
	t.Cleanup(func() { getenv = os.Getenv })

	cfg := Default()
	cfg.GRPCAddr = ":9000"
	FromEnv(&cfg)
	if cfg.GRPCAddr != ":9000" {
		t.Fatalf("empty env should not clobber: %q", cfg.GRPCAddr)
	}
}
