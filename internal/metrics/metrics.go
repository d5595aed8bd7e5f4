// Package metrics declares Waymark's Prometheus instruments on the default
// registry. The HTTP server exposes them at /metrics via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PublishedTotal counts events appended per topic.
	PublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waymark_published_total",
			Help: "Total number of events published",
		},
		[]string{"topic"},
	)

	// FanoutPrunedTotal counts subscriptions dropped because their sink
	// failed during fan-out.
	FanoutPrunedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waymark_fanout_pruned_total",
			Help: "Total number of subscriptions pruned after a sink failure",
		},
		[]string{"topic"},
	)

	// ActiveSubscriptions tracks currently registered subscriptions across
	// all topics.
	ActiveSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "waymark_active_subscriptions",
			Help: "Current number of active subscriptions",
		},
	)

	// NotesTotal counts notes appended to the note board.
	NotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "waymark_notes_total",
			Help: "Total number of notes exchanged",
		},
	)

	// TripsCompletedTotal counts trips that reached a summary.
	TripsCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "waymark_trips_completed_total",
			Help: "Total number of completed trips",
		},
	)

	// FeaturesLoaded tracks the number of named features in the live index.
	FeaturesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "waymark_features_loaded",
			Help: "Current number of named features in the index",
		},
	)
)
