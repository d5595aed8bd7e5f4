package routesvc

import (
	"errors"
	"testing"
	"time"

	"github.com/rzbill/waymark/internal/geo"
)

func indexWith(features ...geo.Feature) *geo.FeatureIndex {
	ix := geo.NewFeatureIndex()
	ix.Replace(features)
	return ix
}

func TestTripAccumulation(t *testing.T) {
	// A named feature sits at the origin; the trip visits it twice.
	ix := indexWith(geo.Feature{Name: "Origin Cairn", Location: geo.Point{}})
	r := newTripRecorder(ix)

	points := []geo.Point{{}, {}, {Lat: 1}}
	for _, p := range points {
		if err := r.Observe(p); err != nil {
			t.Fatalf("observe: %v", err)
		}
	}
	sum := r.Summary()

	if sum.PointCount != 3 {
		t.Fatalf("point count=%d want 3", sum.PointCount)
	}
	if sum.FeatureCount != 2 {
		t.Fatalf("feature count=%d want 2", sum.FeatureCount)
	}
	want := geo.Haversine(geo.Point{}, geo.Point{Lat: 1})
	if sum.DistanceMeters != want {
		t.Fatalf("distance=%d want %d", sum.DistanceMeters, want)
	}
}

func TestTripDistanceSumsSegments(t *testing.T) {
	r := newTripRecorder(geo.NewFeatureIndex())
	// Two equal one-degree hops along the meridian.
	for _, p := range []geo.Point{{}, {Lat: 10000000}, {Lat: 20000000}} {
		if err := r.Observe(p); err != nil {
			t.Fatalf("observe: %v", err)
		}
	}
	if got := r.Summary().DistanceMeters; got != 2*111194 {
		t.Fatalf("distance=%d want %d", got, 2*111194)
	}
}

func TestTripElapsedWholeSeconds(t *testing.T) {
	base := time.Unix(1000, 0)
	current := base
	now = func() time.Time { return current }
	defer func() { now = time.Now }()

	r := newTripRecorder(geo.NewFeatureIndex())
	if err := r.Observe(geo.Point{}); err != nil {
		t.Fatalf("observe: %v", err)
	}
	current = base.Add(2500 * time.Millisecond)
	if got := r.Summary().ElapsedSeconds; got != 2 {
		t.Fatalf("elapsed=%d want 2 (truncated)", got)
	}
}

func TestObserveAfterSummaryFails(t *testing.T) {
	r := newTripRecorder(geo.NewFeatureIndex())
	if err := r.Observe(geo.Point{}); err != nil {
		t.Fatalf("observe: %v", err)
	}
	_ = r.Summary()
	if err := r.Observe(geo.Point{Lat: 1}); !errors.Is(err, ErrTripFinalized) {
		t.Fatalf("expected ErrTripFinalized, got %v", err)
	}
}

func TestSummaryStable(t *testing.T) {
	base := time.Unix(2000, 0)
	current := base
	now = func() time.Time { return current }
	defer func() { now = time.Now }()

	r := newTripRecorder(geo.NewFeatureIndex())
	_ = r.Observe(geo.Point{})
	current = base.Add(3 * time.Second)
	first := r.Summary()
	current = base.Add(90 * time.Second)
	if second := r.Summary(); second != first {
		t.Fatalf("summary changed on repeat call: %+v then %+v", first, second)
	}
}

func TestEmptyTripSummary(t *testing.T) {
	r := newTripRecorder(geo.NewFeatureIndex())
	sum := r.Summary()
	if sum.PointCount != 0 || sum.FeatureCount != 0 || sum.DistanceMeters != 0 {
		t.Fatalf("empty trip should be all zeros: %+v", sum)
	}
}
