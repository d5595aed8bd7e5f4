// Package httpserver hosts the HTTP/SSE gateway for Waymark: flat /v1/...
// routes for publish, message listing, SSE subscribe, feature lookup, trips,
// and notes, plus /v1/healthz and Prometheus /metrics.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: config.Default()})
//	s := httpserver.New(rt)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
