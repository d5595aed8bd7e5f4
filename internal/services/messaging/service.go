package messagingsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/im7mortal/kmutex"

	"github.com/rzbill/waymark/internal/eventlog"
	"github.com/rzbill/waymark/internal/metrics"
	"github.com/rzbill/waymark/pkg/id"
	logpkg "github.com/rzbill/waymark/pkg/log"
)

// Service provides publish/subscribe over the in-memory event store. All
// per-topic ordering guarantees hang on one rule: append+fanout (publish) and
// register+window (subscribe) each run inside the topic's critical section.
type Service struct {
	store  *eventlog.Store
	reg    *Registry
	locks  *kmutex.Kmutex
	ids    *id.Generator
	logger logpkg.Logger
}

// New returns a Service using a default logger.
func New(store *eventlog.Store) *Service {
	return NewWithLogger(store, nil)
}

// NewWithLogger returns a Service using the provided logger.
func NewWithLogger(store *eventlog.Store, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("messaging"))
	}
	return &Service{
		store:  store,
		reg:    newRegistry(),
		locks:  kmutex.New(),
		ids:    id.NewGenerator(),
		logger: logger,
	}
}

// Publish appends a new event to the topic and fans it out to live
// subscribers, atomically per topic. The stored event, with its assigned id,
// is returned as the ack. The only failure mode is a context already
// cancelled before the critical section: then nothing is appended.
func (s *Service) Publish(ctx context.Context, topic, author, text string) (*eventlog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("publish to %q: %w", topic, err)
	}

	l := s.store.GetOrCreate(topic)
	s.locks.Lock(topic)
	ev := l.Append(author, text)
	delivered, pruned := s.reg.FanOut(ev)
	s.locks.Unlock(topic)

	metrics.PublishedTotal.WithLabelValues(topic).Inc()
	if n := len(pruned); n > 0 {
		metrics.FanoutPrunedTotal.WithLabelValues(topic).Add(float64(n))
		s.logger.Warn("pruned subscriptions after sink failure",
			logpkg.Str("topic", topic),
			logpkg.Int("pruned", n),
		)
	}
	s.logger.Debug("published",
		logpkg.Str("topic", topic),
		logpkg.Int64("id", ev.ID),
		logpkg.Int("delivered", delivered),
	)
	return ev, nil
}

// Subscribe registers the sink on the topic, replays the backlog window, and
// then delivers live events until ctx ends. Registration and the window
// snapshot happen in the topic's critical section, so no concurrently
// published event can fall between backlog and live delivery; events fanned
// out during replay buffer in the subscription and are flushed in order.
func (s *Service) Subscribe(ctx context.Context, opts SubscribeOptions, sink Sink) error {
	filter, err := newCELFilter(opts.Filter)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFilter, err)
	}
	sub := newSubscription(s.ids.Next().String(), opts.Topic, sink, filter)
	logger := s.logger.With(
		logpkg.Str("sub", sub.id),
		logpkg.Str("topic", opts.Topic),
	)

	l := s.store.GetOrCreate(opts.Topic)
	s.locks.Lock(opts.Topic)
	s.reg.Add(opts.Topic, sub)
	window := l.Window(opts.Cursor, opts.MaxCount)
	s.locks.Unlock(opts.Topic)

	defer func() {
		s.locks.Lock(opts.Topic)
		s.reg.Remove(opts.Topic, sub)
		s.locks.Unlock(opts.Topic)
		sub.close()
		logger.Debug("subscription ended")
	}()

	backlog := Backlog{Events: filter.Apply(window)}
	logger.Debug("subscribed",
		logpkg.Int64("cursor", opts.Cursor),
		logpkg.Int("max_count", opts.MaxCount),
		logpkg.Int("backlog", len(backlog.Events)),
	)
	if err := sink.SendBacklog(backlog); err != nil {
		return fmt.Errorf("send backlog: %w", err)
	}
	if err := sub.finishReplay(); err != nil {
		return fmt.Errorf("flush replay buffer: %w", err)
	}

	<-ctx.Done()
	return nil
}

// Slice returns the replay window for a topic without registering anything.
// Unknown topics yield an empty window, never an error.
func (s *Service) Slice(topic string, cursor int64, maxCount int) []*eventlog.Event {
	l, ok := s.store.Lookup(topic)
	if !ok {
		return nil
	}
	return l.Window(cursor, maxCount)
}

// Messages returns up to limit events with ids greater than after. When the
// page would be empty and wait is positive, it blocks up to wait for a new
// append before retrying once. Unknown topics return nil immediately.
func (s *Service) Messages(topic string, after int64, limit int, wait time.Duration) []*eventlog.Event {
	l, ok := s.store.Lookup(topic)
	if !ok {
		return nil
	}
	page := l.After(after, limit)
	if len(page) == 0 && wait > 0 {
		if l.WaitForAppend(wait) {
			page = l.After(after, limit)
		}
	}
	return page
}

// TopicStats describes one topic's current state.
type TopicStats struct {
	Topic       string `json:"topic"`
	Events      int64  `json:"events"`
	Subscribers int    `json:"subscribers"`
}

// Stats returns per-topic counters for every known topic, sorted by name.
func (s *Service) Stats() []TopicStats {
	topics := s.store.Topics()
	out := make([]TopicStats, 0, len(topics))
	for _, t := range topics {
		l, ok := s.store.Lookup(t)
		if !ok {
			continue
		}
		out = append(out, TopicStats{
			Topic:       t,
			Events:      l.Len(),
			Subscribers: s.reg.Count(t),
		})
	}
	return out
}
