package routesvc

import (
	"github.com/rzbill/waymark/internal/geo"
	logpkg "github.com/rzbill/waymark/pkg/log"
)

// Service answers feature lookups and hosts trip recorders and the note
// board. Feature data lives in the shared index owned by the runtime.
type Service struct {
	features *geo.FeatureIndex
	board    *NoteBoard
	logger   logpkg.Logger
}

// New returns a Service using a default logger.
func New(features *geo.FeatureIndex) *Service {
	return NewWithLogger(features, nil)
}

// NewWithLogger returns a Service using the provided logger.
func NewWithLogger(features *geo.FeatureIndex, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("routes"))
	}
	return &Service{
		features: features,
		board:    NewNoteBoard(),
		logger:   logger,
	}
}

// GetFeature returns the feature at exactly p. A miss yields an unnamed
// feature at the queried location, never an error.
func (s *Service) GetFeature(p geo.Point) geo.Feature {
	return s.features.At(p)
}

// ListFeatures returns the named features inside r in dataset order. Callers
// stream the slice element by element.
func (s *Service) ListFeatures(r geo.Rect) []geo.Feature {
	return s.features.Within(r)
}

// NewTrip starts a recorder for one client-streaming call.
func (s *Service) NewTrip() *TripRecorder {
	return newTripRecorder(s.features)
}

// ExchangeNotes appends a note at location and returns the notes that were
// already there, oldest first.
func (s *Service) ExchangeNotes(location geo.Point, text string) []Note {
	snapshot := s.board.Exchange(location, text)
	s.logger.Debug("note exchanged",
		logpkg.Int("lat", int(location.Lat)),
		logpkg.Int("lon", int(location.Lon)),
		logpkg.Int("replayed", len(snapshot)),
	)
	return snapshot
}

// Notes returns the notes at location without appending.
func (s *Service) Notes(location geo.Point) []Note {
	return s.board.Notes(location)
}
