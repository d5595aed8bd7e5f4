package client

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"google.golang.org/grpc"
)

func startGRPCStub(t *testing.T, register func(*grpc.Server)) (addr string, stop func()) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	gs := grpc.NewServer()
	register(gs)
	done := make(chan struct{})
	go func() {
		_ = gs.Serve(l)
		close(done)
	}()
	stop = func() {
		gs.GracefulStop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}
	return l.Addr().String(), stop
}

type messagingStub struct {
	waymarkv1.UnimplementedMessagingServiceServer
	toSend    int
	noBacklog bool
}

func (s *messagingStub) Publish(ctx context.Context, req *waymarkv1.PublishRequest) (*waymarkv1.PublishResponse, error) {
	return &waymarkv1.PublishResponse{Message: &waymarkv1.Message{
		Topic:  req.GetTopic(),
		Author: req.GetAuthor(),
		Text:   req.GetText(),
		Id:     7,
	}}, nil
}

func (s *messagingStub) Subscribe(req *waymarkv1.SubscribeRequest, stream grpc.ServerStreamingServer[waymarkv1.SubscribeResponse]) error {
	if s.noBacklog {
		frame := &waymarkv1.SubscribeResponse{
			Kind: &waymarkv1.SubscribeResponse_NoBacklog{NoBacklog: &waymarkv1.NoBacklog{}},
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
	}
	for i := 1; i <= s.toSend; i++ {
		frame := &waymarkv1.SubscribeResponse{
			Kind: &waymarkv1.SubscribeResponse_Message{Message: &waymarkv1.Message{
				Topic:  req.GetTopic(),
				Author: "stub",
				Text:   fmt.Sprintf("payload-%d", i),
				Id:     int64(i),
			}},
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
	}
	return nil
}

func startMessagingStub(t *testing.T, stub *messagingStub) (addr string, stop func()) {
	t.Helper()
	return startGRPCStub(t, func(gs *grpc.Server) {
		waymarkv1.RegisterMessagingServiceServer(gs, stub)
	})
}

func TestTopicPublish_PrintsAckedMessage(t *testing.T) {
	addr, stop := startMessagingStub(t, &messagingStub{})
	defer stop()
	t.Setenv("WAYMARK_GRPC", addr)

	cmd := newTopicPublishCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--topic", "lobby", "--author", "ann", "--text", "hi"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), `"id": 7`) {
		t.Fatalf("expected assigned id in output, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"topic": "lobby"`) {
		t.Fatalf("expected topic in output, got: %s", buf.String())
	}
}

func TestTopicPublish_RequiresTopicAndAuthor(t *testing.T) {
	cmd := newTopicPublishCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--author", "ann", "--text", "hi"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for missing --topic, got nil")
	}

	cmd = newTopicPublishCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--topic", "lobby", "--text", "hi"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for missing --author, got nil")
	}
}

func TestTopicSubscribe_LimitStopsStream(t *testing.T) {
	addr, stop := startMessagingStub(t, &messagingStub{toSend: 5})
	defer stop()
	t.Setenv("WAYMARK_GRPC", addr)

	cmd := newTopicSubscribeCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--topic", "lobby", "--limit", "3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"id":1`) {
		t.Fatalf("expected first message id 1, got: %s", lines[0])
	}
}

func TestTopicSubscribe_NoBacklogFrame(t *testing.T) {
	addr, stop := startMessagingStub(t, &messagingStub{noBacklog: true, toSend: 2})
	defer stop()
	t.Setenv("WAYMARK_GRPC", addr)

	cmd := newTopicSubscribeCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--topic", "lobby", "--limit", "2"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// The no_backlog marker does not count against --limit.
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "no_backlog") {
		t.Fatalf("expected no_backlog marker first, got: %s", lines[0])
	}
}

func TestTopicMessages_ListsViaHTTP(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/topics/messages" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("topic"); got != "lobby" {
			t.Errorf("topic query = %q, want lobby", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"topic":"lobby","messages":[{"topic":"lobby","author":"ann","text":"hi","id":1}]}`)
	}))
	defer ts.Close()

	cmd := newTopicMessagesCommand(func() string { return ts.URL })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--topic", "lobby", "--limit", "10"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), `"author": "ann"`) {
		t.Fatalf("expected message in output, got: %s", buf.String())
	}
}

func TestTopicStats_ListsViaHTTP(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/topics/stats" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"topics":[{"topic":"lobby","events":4,"subscribers":2}]}`)
	}))
	defer ts.Close()

	cmd := newTopicStatsCommand(func() string { return ts.URL })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), `"events": 4`) {
		t.Fatalf("expected stats in output, got: %s", buf.String())
	}
}
