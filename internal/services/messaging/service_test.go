package messagingsvc

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rzbill/waymark/internal/eventlog"
	logpkg "github.com/rzbill/waymark/pkg/log"
)

func newTestService() *Service {
	logger := logpkg.NewLogger(logpkg.WithOutput(logpkg.NewNullOutput()))
	return NewWithLogger(eventlog.NewStore(), logger)
}

// captureSink records everything the service sends it.
type captureSink struct {
	mu       sync.Mutex
	backlogs []Backlog
	events   []*eventlog.Event
	failSend bool
}

func (c *captureSink) SendBacklog(b Backlog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.backlogs = append(c.backlogs, b)
	return nil
}

func (c *captureSink) Send(ev *eventlog.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSend {
		return ErrSinkClosed
	}
	c.events = append(c.events, ev)
	return nil
}

func (c *captureSink) backlogCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.backlogs)
}

func (c *captureSink) backlogIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ids []int64
	for _, b := range c.backlogs {
		for _, ev := range b.Events {
			ids = append(ids, ev.ID)
		}
	}
	return ids
}

func (c *captureSink) liveIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int64, len(c.events))
	for i, ev := range c.events {
		ids[i] = ev.ID
	}
	return ids
}

// startSub runs Subscribe in a goroutine and blocks until the backlog frame
// arrived, which also means registration is complete.
func startSub(t *testing.T, svc *Service, opts SubscribeOptions, sink *captureSink) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Subscribe(ctx, opts, sink) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Errorf("subscribe did not return after cancel")
		}
	})
	waitFor(t, func() bool { return sink.backlogCount() > 0 })
	return cancel
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached in time")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func eqIDs(got []int64, want ...int64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestPublishConcurrentIDsGapless(t *testing.T) {
	svc := newTestService()
	const workers, per = 4, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				if _, err := svc.Publish(context.Background(), "races", "w"+strconv.Itoa(w), "x"); err != nil {
					t.Errorf("publish: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	events := svc.Slice("races", 0, workers*per+10)
	if len(events) != workers*per {
		t.Fatalf("expected %d events, got %d", workers*per, len(events))
	}
	for i, ev := range events {
		if ev.ID != int64(i)+1 {
			t.Fatalf("gap at position %d: id=%d", i, ev.ID)
		}
	}
}

func TestPublishAcksCreatedEvent(t *testing.T) {
	svc := newTestService()
	ev, err := svc.Publish(context.Background(), "ack", "ada", "hello")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if ev.ID != 1 || ev.Topic != "ack" || ev.Author != "ada" || ev.Text != "hello" {
		t.Fatalf("ack is not the stored event: %+v", ev)
	}
}

func TestPublishCancelledContext(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Publish(ctx, "t", "a", "x"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	if got := svc.Slice("t", 0, 10); len(got) != 0 {
		t.Fatalf("cancelled publish must not append: %+v", got)
	}
}

func TestSubscribeReplayThenLive(t *testing.T) {
	svc := newTestService()
	for _, text := range []string{"a", "b", "c"} {
		if _, err := svc.Publish(context.Background(), "replay", "ada", text); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "replay", Cursor: 0, MaxCount: 10}, sink)

	if got := sink.backlogIDs(); !eqIDs(got, 1, 2, 3) {
		t.Fatalf("backlog ids=%v want [1 2 3]", got)
	}

	if _, err := svc.Publish(context.Background(), "replay", "bob", "d"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return len(sink.liveIDs()) == 1 })
	if got := sink.liveIDs(); !eqIDs(got, 4) {
		t.Fatalf("live ids=%v want [4]", got)
	}
}

func TestSubscribeEmptyTopicNoBacklogSignal(t *testing.T) {
	svc := newTestService()
	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "empty", Cursor: 0, MaxCount: 10}, sink)

	if sink.backlogCount() != 1 {
		t.Fatalf("expected exactly one backlog frame, got %d", sink.backlogCount())
	}
	sink.mu.Lock()
	none := sink.backlogs[0].None()
	sink.mu.Unlock()
	if !none {
		t.Fatalf("expected empty backlog to be tagged None")
	}

	if _, err := svc.Publish(context.Background(), "empty", "ada", "first"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return len(sink.liveIDs()) == 1 })
}

func TestSubscribeCursorAtEndSkipsHistory(t *testing.T) {
	svc := newTestService()
	svc.mustPublish(t, "cur", 2)

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "cur", Cursor: 2, MaxCount: 10}, sink)
	if got := sink.backlogIDs(); len(got) != 0 {
		t.Fatalf("expected no backlog, got %v", got)
	}

	if _, err := svc.Publish(context.Background(), "cur", "ada", "new"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return eqIDs(sink.liveIDs(), 3) })
}

func TestSubscribeMaxCountClampsToNewest(t *testing.T) {
	svc := newTestService()
	svc.mustPublish(t, "clamp", 5)

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "clamp", Cursor: 0, MaxCount: 2}, sink)
	if got := sink.backlogIDs(); !eqIDs(got, 4, 5) {
		t.Fatalf("backlog ids=%v want [4 5]", got)
	}
}

func TestSubscribeNonPositiveMaxCountMeansNoBacklog(t *testing.T) {
	svc := newTestService()
	svc.mustPublish(t, "nb", 3)

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "nb", Cursor: 0, MaxCount: 0}, sink)
	sink.mu.Lock()
	none := sink.backlogs[0].None()
	sink.mu.Unlock()
	if !none {
		t.Fatalf("maxCount=0 must yield an empty backlog")
	}

	if _, err := svc.Publish(context.Background(), "nb", "ada", "live"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return eqIDs(sink.liveIDs(), 4) })
}

func TestPartialFailureIsolation(t *testing.T) {
	svc := newTestService()
	bad := &captureSink{failSend: true}
	good := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "iso", MaxCount: 10}, bad)
	startSub(t, svc, SubscribeOptions{Topic: "iso", MaxCount: 10}, good)

	if _, err := svc.Publish(context.Background(), "iso", "ada", "one"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return eqIDs(good.liveIDs(), 1) })
	if svc.reg.Count("iso") != 1 {
		t.Fatalf("failing sink not pruned: count=%d", svc.reg.Count("iso"))
	}

	if _, err := svc.Publish(context.Background(), "iso", "ada", "two"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return eqIDs(good.liveIDs(), 1, 2) })
	if got := bad.liveIDs(); len(got) != 0 {
		t.Fatalf("failing sink recorded deliveries: %v", got)
	}
}

func TestIdempotentRegistrationSameSink(t *testing.T) {
	svc := newTestService()
	sink := &captureSink{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 2)
	go func() { done <- svc.Subscribe(ctx, SubscribeOptions{Topic: "dup", MaxCount: 10}, sink) }()
	go func() { done <- svc.Subscribe(ctx, SubscribeOptions{Topic: "dup", MaxCount: 10}, sink) }()
	waitFor(t, func() bool { return sink.backlogCount() == 2 })

	if svc.reg.Count("dup") != 1 {
		t.Fatalf("same sink registered twice: count=%d", svc.reg.Count("dup"))
	}
	if _, err := svc.Publish(context.Background(), "dup", "ada", "x"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return len(sink.liveIDs()) == 1 })
	// Give a straggler delivery a chance to show up before asserting.
	time.Sleep(50 * time.Millisecond)
	if got := sink.liveIDs(); !eqIDs(got, 1) {
		t.Fatalf("expected exactly one delivery, got %v", got)
	}

	cancel()
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("subscriber %d did not end", i)
		}
	}
}

func TestSliceUnknownTopicEmpty(t *testing.T) {
	svc := newTestService()
	if got := svc.Slice("nonexistent", 0, 10); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
	if got := svc.Messages("nonexistent", 0, 10, 0); got != nil {
		t.Fatalf("expected nil page, got %v", got)
	}
}

func TestFilterAppliesToReplayAndLive(t *testing.T) {
	svc := newTestService()
	for _, m := range []struct{ author, text string }{
		{"ada", "one"}, {"bob", "two"}, {"ada", "three"},
	} {
		if _, err := svc.Publish(context.Background(), "filt", m.author, m.text); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "filt", MaxCount: 10, Filter: `author == "ada"`}, sink)
	if got := sink.backlogIDs(); !eqIDs(got, 1, 3) {
		t.Fatalf("filtered backlog=%v want [1 3]", got)
	}

	if _, err := svc.Publish(context.Background(), "filt", "bob", "skip"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if _, err := svc.Publish(context.Background(), "filt", "ada", "keep"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	waitFor(t, func() bool { return eqIDs(sink.liveIDs(), 5) })
}

func TestFilterAllBacklogFilteredTagsNone(t *testing.T) {
	svc := newTestService()
	svc.mustPublish(t, "filtnone", 3)

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "filtnone", MaxCount: 10, Filter: `author == "nobody"`}, sink)
	sink.mu.Lock()
	none := sink.backlogs[0].None()
	sink.mu.Unlock()
	if !none {
		t.Fatalf("fully filtered backlog must be tagged None")
	}
}

func TestSubscribeBadFilter(t *testing.T) {
	svc := newTestService()
	err := svc.Subscribe(context.Background(), SubscribeOptions{Topic: "t", Filter: "(("}, &captureSink{})
	if err == nil || !strings.Contains(err.Error(), "compile filter") {
		t.Fatalf("expected compile error, got %v", err)
	}
}

func TestGaplessReplayUnderConcurrentPublish(t *testing.T) {
	svc := newTestService()
	const seed, extra = 50, 50
	svc.mustPublish(t, "torrent", seed)

	var wg sync.WaitGroup
	wg.Add(2)
	for w := 0; w < 2; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < extra/2; i++ {
				if _, err := svc.Publish(context.Background(), "torrent", "pub", "x"); err != nil {
					t.Errorf("publish: %v", err)
				}
			}
		}()
	}

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "torrent", Cursor: 0, MaxCount: seed + extra}, sink)
	wg.Wait()

	waitFor(t, func() bool {
		return len(sink.backlogIDs())+len(sink.liveIDs()) == seed+extra
	})

	combined := append(sink.backlogIDs(), sink.liveIDs()...)
	for i, id := range combined {
		if id != int64(i)+1 {
			t.Fatalf("sequence broken at %d: got id %d (combined=%v)", i, id, combined)
		}
	}
}

func TestStats(t *testing.T) {
	svc := newTestService()
	svc.mustPublish(t, "s1", 2)
	svc.mustPublish(t, "s2", 1)

	sink := &captureSink{}
	startSub(t, svc, SubscribeOptions{Topic: "s1", MaxCount: 10}, sink)

	stats := svc.Stats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 topics, got %+v", stats)
	}
	if stats[0].Topic != "s1" || stats[0].Events != 2 || stats[0].Subscribers != 1 {
		t.Fatalf("s1 stats wrong: %+v", stats[0])
	}
	if stats[1].Topic != "s2" || stats[1].Events != 1 || stats[1].Subscribers != 0 {
		t.Fatalf("s2 stats wrong: %+v", stats[1])
	}
}

func TestMessagesLongPoll(t *testing.T) {
	svc := newTestService()
	svc.mustPublish(t, "poll", 1)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_, _ = svc.Publish(context.Background(), "poll", "ada", "late")
	}()

	start := time.Now()
	page := svc.Messages("poll", 1, 10, 2*time.Second)
	if len(page) != 1 || page[0].ID != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("long poll did not wake on append")
	}
}

// mustPublish appends n throwaway events to topic.
func (s *Service) mustPublish(t *testing.T, topic string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := s.Publish(context.Background(), topic, "seed", strconv.Itoa(i)); err != nil {
			t.Fatalf("seed publish: %v", err)
		}
	}
}
