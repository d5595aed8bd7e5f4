package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rzbill/waymark/internal/eventlog"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
)

// sseSink implements the messaging Sink interface for Server-Sent Events.
//
// Stored messages become "data:" events; an empty backlog becomes an
// explicit "no_backlog" event so clients can tell replay apart from silence.
type sseSink struct {
	w http.ResponseWriter
}

// SendBacklog writes the replayed window, or the no_backlog event when the
// window is empty.
func (s sseSink) SendBacklog(b messagingsvc.Backlog) error {
	if b.None() {
		return s.writeEvent("no_backlog", []byte("{}"))
	}
	for _, ev := range b.Events {
		if err := s.Send(ev); err != nil {
			return err
		}
	}
	return nil
}

// Send formats and sends a stored message as an SSE data event.
func (s sseSink) Send(ev *eventlog.Event) error {
	b, _ := json.Marshal(messageToJSON(ev))
	return s.writeEvent("", b)
}

// writeEvent writes one SSE frame and flushes it to the client immediately.
func (s sseSink) writeEvent(event string, data []byte) error {
	if event != "" {
		if _, err := s.w.Write([]byte("event: " + event + "\n")); err != nil {
			return err
		}
	}
	if _, err := s.w.Write([]byte("data: ")); err != nil {
		return err
	}
	if _, err := s.w.Write(data); err != nil {
		return err
	}
	if _, err := s.w.Write([]byte("\n\n")); err != nil {
		return err
	}
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
