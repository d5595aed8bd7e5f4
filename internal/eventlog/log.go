package eventlog

import (
	"errors"
	"sync"
)

// Event is a single immutable broadcast record. Events are shared by pointer
// between the log and its readers and must never be mutated after Append.
type Event struct {
	ID     int64
	Topic  string
	Author string
	Text   string
}

// Log holds the ordered event history for one topic.
type Log struct {
	topic string

	mu       sync.Mutex
	events   []*Event
	notifyCh chan struct{}
}

func newLog(topic string) *Log {
	return &Log{topic: topic, notifyCh: make(chan struct{})}
}

// Topic returns the topic this log belongs to.
func (l *Log) Topic() string { return l.topic }

// Append stores a new event with id = size+1 and returns it.
func (l *Log) Append(author, text string) *Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev := &Event{
		ID:     int64(len(l.events)) + 1,
		Topic:  l.topic,
		Author: author,
		Text:   text,
	}
	l.events = append(l.events, ev)
	// notify waiters
	close(l.notifyCh)
	l.notifyCh = make(chan struct{})
	return ev
}

// Len returns the number of events appended so far, which is also the id of
// the newest event.
func (l *Log) Len() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int64(len(l.events))
}

// Get returns the event with the given id, or ErrNotFound.
func (l *Log) Get(id int64) (*Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id < 1 || id > int64(len(l.events)) {
		return nil, ErrNotFound
	}
	return l.events[id-1], nil
}

// Window returns a copy of the replay window for a subscriber that has seen
// cursor events and wants at most maxCount of the newest backlog. The window
// starts at max(size-maxCount, cursor) clamped to [0, size]; a cursor at or
// past the end, an empty log, or a non-positive maxCount all yield nil.
func (l *Log) Window(cursor int64, maxCount int) []*Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	if maxCount <= 0 {
		return nil
	}
	size := int64(len(l.events))
	start := size - int64(maxCount)
	if cursor > start {
		start = cursor
	}
	if start < 0 {
		start = 0
	}
	if start >= size {
		return nil
	}
	out := make([]*Event, size-start)
	copy(out, l.events[start:size])
	return out
}

// After returns up to limit events with ids strictly greater than after.
// A non-positive limit means no cap.
func (l *Log) After(after int64, limit int) []*Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	size := int64(len(l.events))
	if after < 0 {
		after = 0
	}
	if after >= size {
		return nil
	}
	n := size - after
	if limit > 0 && int64(limit) < n {
		n = int64(limit)
	}
	out := make([]*Event, n)
	copy(out, l.events[after:after+n])
	return out
}

var ErrNotFound = errors.New("event not found")
