package config

import (
	"os"
	"strconv"
)

var getenv = os.Getenv

// FromEnv overlays WAYMARK_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := getenv("WAYMARK_GRPC_ADDR"); v != "" {
		cfg.GRPCAddr = v
	}
	if v := getenv("WAYMARK_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := getenv("WAYMARK_FEATURES_FILE"); v != "" {
		cfg.FeaturesFile = v
	}
	if v := getenv("WAYMARK_WATCH_FEATURES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WatchFeatures = b
		}
	}
	if v := getenv("WAYMARK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("WAYMARK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
