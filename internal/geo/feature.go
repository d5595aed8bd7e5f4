package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rzbill/waymark/internal/metrics"
)

// Feature is a point of interest. An empty name means the location carries no
// feature; At synthesizes such features for misses.
type Feature struct {
	Name     string
	Location Point
}

// Named reports whether the feature carries a name.
func (f Feature) Named() bool { return f.Name != "" }

// FeatureIndex is a concurrency-safe exact-match index of named features.
// Lookups run under a read lock; Replace swaps the whole dataset atomically.
type FeatureIndex struct {
	mu      sync.RWMutex
	byPoint map[Point]string
	ordered []Feature
}

// NewFeatureIndex returns an empty index.
func NewFeatureIndex() *FeatureIndex {
	return &FeatureIndex{byPoint: make(map[Point]string)}
}

// Replace swaps the dataset for the given features. Later duplicates of the
// same location win for point lookups; the ordered listing keeps every entry.
func (ix *FeatureIndex) Replace(features []Feature) {
	byPoint := make(map[Point]string, len(features))
	ordered := make([]Feature, len(features))
	copy(ordered, features)
	for _, f := range features {
		byPoint[f.Location] = f.Name
	}
	ix.mu.Lock()
	ix.byPoint = byPoint
	ix.ordered = ordered
	ix.mu.Unlock()
	metrics.FeaturesLoaded.Set(float64(len(features)))
}

// At returns the feature at exactly p. A miss yields an unnamed feature at
// the queried location, never an error.
func (ix *FeatureIndex) At(p Point) Feature {
	ix.mu.RLock()
	name, ok := ix.byPoint[p]
	ix.mu.RUnlock()
	if !ok {
		return Feature{Location: p}
	}
	return Feature{Name: name, Location: p}
}

// Within returns the features inside r, in dataset order.
func (ix *FeatureIndex) Within(r Rect) []Feature {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	var out []Feature
	for _, f := range ix.ordered {
		if r.Contains(f.Location) {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of features in the index.
func (ix *FeatureIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.ordered)
}

// featureJSON mirrors one dataset entry:
//
//	{"location": {"latitude": 408000000, "longitude": -740500000}, "name": "..."}
type featureJSON struct {
	Location struct {
		Latitude  int32 `json:"latitude"`
		Longitude int32 `json:"longitude"`
	} `json:"location"`
	Name string `json:"name"`
}

// ParseFeatures decodes a JSON array dataset. Entries with empty names mark
// locations without a feature and are dropped.
func ParseFeatures(data []byte) ([]Feature, error) {
	var raw []featureJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse features: %w", err)
	}
	out := make([]Feature, 0, len(raw))
	for _, r := range raw {
		if r.Name == "" {
			continue
		}
		out = append(out, Feature{
			Name:     r.Name,
			Location: Point{Lat: r.Location.Latitude, Lon: r.Location.Longitude},
		})
	}
	return out, nil
}

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}
	return ParseFeatures(data)
}

//go:embed data/features.json
var defaultDataset []byte

// DefaultFeatures parses the embedded dataset.
func DefaultFeatures() ([]Feature, error) {
	return ParseFeatures(defaultDataset)
}
