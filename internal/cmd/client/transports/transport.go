package transports

import (
	"context"
	"errors"
)

// Message is a stored topic message as seen by the CLI.
type Message struct {
	Topic  string `json:"topic"`
	Author string `json:"author"`
	Text   string `json:"text"`
	ID     int64  `json:"id"`
}

// SubscribeRequest describes a subscription to one topic.
type SubscribeRequest struct {
	Topic string
	// Cursor is the id of the last message already seen; 0 replays from the
	// beginning.
	Cursor int64
	// MaxCount caps the replay window to the newest MaxCount messages.
	MaxCount int
	// Filter is an optional server-side CEL expression.
	Filter string
}

// Frame is one element of a subscribe stream: either the explicit no-backlog
// marker or a message.
type Frame struct {
	NoBacklog bool
	Message   *Message
}

// ErrStop ends a streaming call early from an onFrame callback without
// reporting an error.
var ErrStop = errors.New("stop streaming")

// MessagingTransport abstracts the transport used by the topic commands
// (gRPC today; HTTP/SSE could slot in behind the same interface).
type MessagingTransport interface {
	Publish(ctx context.Context, topic, author, text string) (Message, error)
	Subscribe(ctx context.Context, req SubscribeRequest, onFrame func(Frame) error) error
}
