package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	logpkg "github.com/rzbill/waymark/pkg/log"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	GRPCAddr      string        `json:"grpcAddr"`
	HTTPAddr      string        `json:"httpAddr"`
	FeaturesFile  string        `json:"featuresFile"`
	WatchFeatures bool          `json:"watchFeatures"`
	Log           logpkg.Config `json:"log"`
}

// Default returns built-in defaults. FeaturesFile is empty, which selects the
// embedded dataset.
func Default() Config {
	return Config{
		GRPCAddr: ":50051",
		HTTPAddr: ":8080",
		Log: logpkg.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultConfigPath when one exists and returns
// built-in defaults otherwise.
func LoadDefault() (Config, error) {
	p := DefaultConfigPath()
	if _, err := os.Stat(p); err != nil {
		return Default(), nil
	}
	return Load(p)
}
