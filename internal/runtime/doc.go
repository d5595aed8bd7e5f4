// Package runtime wires the event store, the feature index, and config into
// a single-node Waymark instance. It exposes Open/Close, a basic health
// check, and accessors used by the gRPC and HTTP servers.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
//	// Health
//	_ = rt.CheckHealth(context.Background())
//	// Topic logs are created on first use
//	log := rt.Store().GetOrCreate("lobby")
//	_ = log
package runtime
