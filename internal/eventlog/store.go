package eventlog

import (
	"sort"
	"sync"
)

// Store maps topics to their logs, creating each log on first use. Topics are
// a flat keyspace; any string (including "") names a valid topic.
type Store struct {
	mu   sync.RWMutex
	logs map[string]*Log
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{logs: make(map[string]*Log)}
}

// GetOrCreate returns the log for topic, creating it if needed. Concurrent
// callers for the same topic always receive the same log.
func (s *Store) GetOrCreate(topic string) *Log {
	s.mu.RLock()
	l, ok := s.logs[topic]
	s.mu.RUnlock()
	if ok {
		return l
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.logs[topic]; ok {
		return l
	}
	l = newLog(topic)
	s.logs[topic] = l
	return l
}

// Lookup returns the log for topic if one exists.
func (s *Store) Lookup(topic string) (*Log, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.logs[topic]
	return l, ok
}

// Topics returns the known topic names, sorted.
func (s *Store) Topics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.logs))
	for t := range s.logs {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
