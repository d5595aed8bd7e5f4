package routesvc

import (
	"errors"
	"time"

	"github.com/rzbill/waymark/internal/geo"
	"github.com/rzbill/waymark/internal/metrics"
)

var now = time.Now

// ErrTripFinalized reports an Observe on a trip that already produced its
// summary.
var ErrTripFinalized = errors.New("trip already finalized")

// TripRecorder accumulates one client's trip. Each instance belongs to a
// single streaming call and is never shared, so it carries no locks. A call
// that fails before Summary simply drops the recorder.
type TripRecorder struct {
	features *geo.FeatureIndex
	started  time.Time

	pointCount   int
	featureCount int
	distance     int
	prev         geo.Point
	hasPrev      bool

	finalized bool
	result    Summary
}

// Summary is the result of a finished trip.
type Summary struct {
	PointCount     int
	FeatureCount   int
	DistanceMeters int
	ElapsedSeconds int
}

func newTripRecorder(features *geo.FeatureIndex) *TripRecorder {
	return &TripRecorder{features: features, started: now()}
}

// Observe folds one point into the trip: it counts the point, counts a
// feature if a named one sits at exactly p, and adds the truncated haversine
// distance from the previous point.
func (r *TripRecorder) Observe(p geo.Point) error {
	if r.finalized {
		return ErrTripFinalized
	}
	r.pointCount++
	if r.features.At(p).Named() {
		r.featureCount++
	}
	if r.hasPrev {
		r.distance += geo.Haversine(r.prev, p)
	}
	r.prev, r.hasPrev = p, true
	return nil
}

// Summary finalizes the trip and returns its totals. Elapsed is whole
// seconds since the recorder was created. Repeated calls return the same
// summary.
func (r *TripRecorder) Summary() Summary {
	if !r.finalized {
		r.finalized = true
		r.result = Summary{
			PointCount:     r.pointCount,
			FeatureCount:   r.featureCount,
			DistanceMeters: r.distance,
			ElapsedSeconds: int(now().Sub(r.started).Seconds()),
		}
		metrics.TripsCompletedTotal.Inc()
	}
	return r.result
}
