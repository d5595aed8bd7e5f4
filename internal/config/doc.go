// Package config provides loading and environment overlay for Waymark
// runtime configuration. It exposes a Default() baseline, a JSON file
// loader, and a WAYMARK_* env overlay.
//
// Example:
//
//	cfg, err := config.Load("/etc/waymark/config.json")
//	if err != nil {
//	    cfg = config.Default()
//	}
//	config.FromEnv(&cfg)
//	// Pass cfg into runtime.Options
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
package config
