package messagingsvc

import (
	"sync"

	"github.com/rzbill/waymark/internal/eventlog"
	"github.com/rzbill/waymark/internal/metrics"
)

// Registry tracks live subscriptions per topic, keyed by sink so registering
// the same sink twice on a topic yields at most one delivery per event.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]map[Sink]*subscription
}

func newRegistry() *Registry {
	return &Registry{subs: make(map[string]map[Sink]*subscription)}
}

// Add registers sub unless its sink is already registered on the topic.
// Returns false for the duplicate case.
func (r *Registry) Add(topic string, sub *subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.subs[topic]
	if m == nil {
		m = make(map[Sink]*subscription)
		r.subs[topic] = m
	}
	if _, exists := m[sub.sink]; exists {
		return false
	}
	m[sub.sink] = sub
	metrics.ActiveSubscriptions.Inc()
	return true
}

// Remove drops sub if it is still the registered subscription for its sink.
func (r *Registry) Remove(topic string, sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.subs[topic]
	if m == nil {
		return
	}
	if cur, ok := m[sub.sink]; !ok || cur != sub {
		return
	}
	delete(m, sub.sink)
	if len(m) == 0 {
		delete(r.subs, topic)
	}
	metrics.ActiveSubscriptions.Dec()
}

// Count returns the number of live subscriptions on topic.
func (r *Registry) Count(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[topic])
}

// FanOut delivers ev to every subscription on its topic, then prunes the
// ones whose sinks failed. Runs inside the topic's critical section; delivery
// errors never reach the publisher.
func (r *Registry) FanOut(ev *eventlog.Event) (delivered int, pruned []*subscription) {
	r.mu.RLock()
	set := r.subs[ev.Topic]
	targets := make([]*subscription, 0, len(set))
	for _, sub := range set {
		targets = append(targets, sub)
	}
	r.mu.RUnlock()

	for _, sub := range targets {
		if err := sub.deliver(ev); err != nil {
			pruned = append(pruned, sub)
			continue
		}
		delivered++
	}
	for _, sub := range pruned {
		r.Remove(ev.Topic, sub)
	}
	return delivered, pruned
}
