package runtime

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfgpkg "github.com/rzbill/waymark/internal/config"
	"github.com/rzbill/waymark/internal/geo"
)

func TestOpenCloseHealth(t *testing.T) {
	rt, err := Open(Options{Config: cfgpkg.Default()})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.Close()
	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	if rt.Features().Len() == 0 {
		t.Fatal("embedded dataset should not be empty")
	}
	if rt.Store() == nil {
		t.Fatal("store should be wired")
	}
}

func TestOpenFeaturesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "features.json")
	data := []byte(`[{"location":{"latitude":10,"longitude":20},"name":"Test Pier"}]`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := cfgpkg.Default()
	cfg.FeaturesFile = file
	rt, err := Open(Options{Config: cfg})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rt.Close()

	if got := rt.Features().Len(); got != 1 {
		t.Fatalf("features=%d want 1", got)
	}
	if f := rt.Features().At(geo.Point{Lat: 10, Lon: 20}); f.Name != "Test Pier" {
		t.Fatalf("lookup: %+v", f)
	}
}

func TestOpenMissingFeaturesFile(t *testing.T) {
	cfg := cfgpkg.Default()
	cfg.FeaturesFile = filepath.Join(t.TempDir(), "absent.json")
	if _, err := Open(Options{Config: cfg}); err == nil {
		t.Fatal("expected error for missing features file")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "features.json")
	if err := os.WriteFile(file, []byte(`[{"location":{"latitude":1,"longitude":1},"name":"Old"}]`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := cfgpkg.Default()
	cfg.FeaturesFile = file
	cfg.WatchFeatures = true
	rt, err := Open(Options{Config: cfg})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rt.Close()

	if err := os.WriteFile(file, []byte(`[{"location":{"latitude":2,"longitude":2},"name":"New"}]`), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if rt.Features().At(geo.Point{Lat: 2, Lon: 2}).Named() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("watcher did not pick up the rewritten dataset")
}

func TestCheckHealthCanceled(t *testing.T) {
	rt, err := Open(Options{Config: cfgpkg.Default()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rt.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rt.CheckHealth(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
