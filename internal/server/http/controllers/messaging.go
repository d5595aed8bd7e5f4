package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rzbill/waymark/internal/runtime"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
)

// MessagingController handles all topic-related HTTP endpoints.
//
// It provides a JSON interface to the messaging service: publishing,
// message listing with long-poll support, real-time subscribe via
// Server-Sent Events, and per-topic statistics.
type MessagingController struct {
	rt  *runtime.Runtime
	msg *messagingsvc.Service
}

// NewMessagingController creates a new messaging controller.
func NewMessagingController(rt *runtime.Runtime, svc *messagingsvc.Service) *MessagingController {
	return &MessagingController{rt: rt, msg: svc}
}

// RegisterRoutes registers all topic-related routes with the given mux.
//
// This method sets up HTTP endpoints for:
// - Publishing (/v1/topics/publish)
// - Message listing with optional long-poll (/v1/topics/messages)
// - SSE streaming (/v1/topics/subscribe)
// - Statistics (/v1/topics/stats)
func (c *MessagingController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/topics/publish", c.handlePublish)
	mux.HandleFunc("/v1/topics/messages", c.handleListMessages)
	mux.HandleFunc("/v1/topics/subscribe", c.handleSubscribeSSE)
	mux.HandleFunc("/v1/topics/stats", c.handleStats)
}

// handlePublish appends a message to a topic and returns the stored message
// with its assigned id.
func (c *MessagingController) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req publishReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required")
		return
	}
	if req.Author == "" {
		writeError(w, http.StatusBadRequest, "Author is required")
		return
	}
	ev, err := c.msg.Publish(r.Context(), req.Topic, req.Author, req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to publish")
		return
	}
	writeJSON(w, map[string]any{"message": messageToJSON(ev)})
}

// handleListMessages lists messages with ids greater than after.
// Query params: topic, after, limit, wait_ms (long-poll timeout for an
// empty page).
func (c *MessagingController) handleListMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	q := r.URL.Query()
	topic := q.Get("topic")
	if topic == "" {
		writeError(w, http.StatusBadRequest, "Topic parameter is required")
		return
	}
	after := parseInt64(q.Get("after"), 0)
	limit := parseInt(q.Get("limit"), 100)
	wait := time.Duration(parseInt64(q.Get("wait_ms"), 0)) * time.Millisecond

	page := c.msg.Messages(topic, after, limit, wait)
	writeJSON(w, map[string]any{"topic": topic, "messages": messagesToJSON(page)})
}

// handleSubscribeSSE streams a topic over SSE: backlog replay first, then
// live messages until the client disconnects.
// Query params: topic, cursor, max_count, filter.
func (c *MessagingController) handleSubscribeSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	q := r.URL.Query()
	topic := q.Get("topic")
	if topic == "" {
		writeError(w, http.StatusBadRequest, "Topic parameter is required")
		return
	}
	opts := messagingsvc.SubscribeOptions{
		Topic:    topic,
		Cursor:   parseInt64(q.Get("cursor"), 0),
		MaxCount: parseInt(q.Get("max_count"), 0),
		Filter:   q.Get("filter"),
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	if err := c.msg.Subscribe(r.Context(), opts, sseSink{w: w}); err != nil {
		if errors.Is(err, messagingsvc.ErrBadFilter) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Send failures mean the client is gone; nothing left to report.
	}
}

// handleStats returns per-topic counters for every known topic.
func (c *MessagingController) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, map[string]any{"topics": c.msg.Stats()})
}
