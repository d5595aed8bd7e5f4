package messagingsvc

import (
	"errors"

	"github.com/rzbill/waymark/internal/eventlog"
)

// ErrSinkClosed reports that a subscriber's outbound transport is dead. It is
// recovered locally by pruning the subscription and never surfaces to
// publishers or other subscribers.
var ErrSinkClosed = errors.New("sink closed")

// ErrBadFilter reports a subscribe filter expression that failed to compile.
var ErrBadFilter = errors.New("compile filter")

// SubscribeOptions carries a subscriber's replay position and filter.
type SubscribeOptions struct {
	Topic string
	// Cursor is the number of events the caller has already seen, which is
	// also the id of the last event it saw.
	Cursor int64
	// MaxCount caps the replay window to the newest MaxCount events.
	// Non-positive means no backlog.
	MaxCount int
	// Filter is an optional CEL expression over {topic, author, text, id}.
	Filter string
}

// Backlog is the tagged replay result. An empty Events slice means "no
// backlog", which sinks surface as an explicit frame rather than a nil
// sentinel.
type Backlog struct {
	Events []*eventlog.Event
}

// None reports whether the backlog is empty.
func (b Backlog) None() bool { return len(b.Events) == 0 }

// Sink receives one subscriber's frames. SendBacklog is called exactly once,
// before any live event. The service serializes all calls; implementations
// never see concurrent sends.
type Sink interface {
	SendBacklog(b Backlog) error
	Send(ev *eventlog.Event) error
}
