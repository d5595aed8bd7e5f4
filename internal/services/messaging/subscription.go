package messagingsvc

import (
	"sync"

	"github.com/rzbill/waymark/internal/eventlog"
)

// subscription tracks one subscriber's sink, filter, and replay state. It
// starts in replay mode: live events buffer into pending until the owning
// Subscribe call has written the backlog and flushed the buffer.
type subscription struct {
	id     string
	topic  string
	sink   Sink
	filter celFilter

	mu        sync.Mutex
	closed    bool
	replaying bool
	pending   []*eventlog.Event
}

func newSubscription(id, topic string, sink Sink, filter celFilter) *subscription {
	return &subscription{id: id, topic: topic, sink: sink, filter: filter, replaying: true}
}

// deliver hands a live event to the sink, buffering while replay is active.
// The lock is held across Send so sends stay serialized with close and with
// the replay flush. A send failure closes the subscription and reports the
// error so fan-out can prune it.
func (s *subscription) deliver(ev *eventlog.Event) error {
	if !s.filter.Eval(ev) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	if s.replaying {
		s.pending = append(s.pending, ev)
		return nil
	}
	if err := s.sink.Send(ev); err != nil {
		s.closed = true
		return err
	}
	return nil
}

// finishReplay drains events buffered during replay and switches the
// subscription to direct delivery. Draining runs in rounds: events that
// arrive while a batch is being sent land in pending and are picked up by the
// next round, so the switch to direct mode only happens on an empty buffer.
func (s *subscription) finishReplay() error {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return ErrSinkClosed
		}
		if len(s.pending) == 0 {
			s.replaying = false
			s.mu.Unlock()
			return nil
		}
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()

		for _, ev := range batch {
			if err := s.sink.Send(ev); err != nil {
				s.mu.Lock()
				s.closed = true
				s.mu.Unlock()
				return err
			}
		}
	}
}

// close marks the subscription dead. Blocks until any in-flight send
// completes, so the sink is never written after close returns.
func (s *subscription) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
