package geo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rzbill/waymark/pkg/log"
)

func TestWatchFileReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "features.json")
	v1 := []byte(`[{"location": {"latitude": 1, "longitude": 1}, "name": "one"}]`)
	if err := os.WriteFile(path, v1, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ix := NewFeatureIndex()
	logger := log.NewLogger(log.WithOutput(log.NewNullOutput()))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- WatchFile(ctx, path, ix, logger) }()

	// Give the watcher a moment to arm before rewriting.
	time.Sleep(100 * time.Millisecond)
	v2 := []byte(`[
		{"location": {"latitude": 1, "longitude": 1}, "name": "one"},
		{"location": {"latitude": 2, "longitude": 2}, "name": "two"}
	]`)
	if err := os.WriteFile(path, v2, 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for ix.Len() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("index not reloaded, len=%d", ix.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watcher returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher did not stop on cancel")
	}
}

func TestWatchFileMissingPath(t *testing.T) {
	ix := NewFeatureIndex()
	logger := log.NewLogger(log.WithOutput(log.NewNullOutput()))
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"), ix, logger)
	if err == nil {
		t.Fatalf("expected error for missing path")
	}
}
