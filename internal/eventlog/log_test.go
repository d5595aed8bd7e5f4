package eventlog

import (
	"errors"
	"sync"
	"testing"
)

func TestAppendAssignsSequentialIDs(t *testing.T) {
	l := newLog("lobby")
	a := l.Append("ada", "one")
	b := l.Append("bob", "two")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", a.ID, b.ID)
	}
	if a.Topic != "lobby" || a.Author != "ada" || a.Text != "one" {
		t.Fatalf("event fields not preserved: %+v", a)
	}
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
}

func TestAppendConcurrentUniqueIDs(t *testing.T) {
	l := newLog("t")
	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- l.Append("w", "x").ID
		}()
	}
	wg.Wait()
	close(ids)
	seen := make(map[int64]bool, n)
	for id := range ids {
		if id < 1 || id > n {
			t.Fatalf("id out of range: %d", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestGet(t *testing.T) {
	l := newLog("t")
	ev := l.Append("ada", "hello")
	got, err := l.Get(ev.ID)
	if err != nil || got != ev {
		t.Fatalf("get: %v %v", got, err)
	}
	if _, err := l.Get(0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for id 0, got %v", err)
	}
	if _, err := l.Get(2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound past end, got %v", err)
	}
}

func TestWindowClamps(t *testing.T) {
	cases := []struct {
		name     string
		size     int
		cursor   int64
		maxCount int
		wantIDs  []int64
	}{
		{"empty log", 0, 0, 10, nil},
		{"cold start fits", 5, 0, 10, []int64{1, 2, 3, 4, 5}},
		{"cold start capped", 5, 0, 3, []int64{3, 4, 5}},
		{"resume", 5, 3, 10, []int64{4, 5}},
		{"caught up", 5, 5, 10, nil},
		{"cursor past end", 5, 9, 10, nil},
		{"cap overrides cursor", 5, 1, 2, []int64{4, 5}},
		{"zero cap", 5, 0, 0, nil},
		{"negative cap", 5, 0, -1, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := newLog("t")
			for i := 0; i < c.size; i++ {
				l.Append("w", "x")
			}
			got := l.Window(c.cursor, c.maxCount)
			if len(got) != len(c.wantIDs) {
				t.Fatalf("window len=%d want %d", len(got), len(c.wantIDs))
			}
			for i, ev := range got {
				if ev.ID != c.wantIDs[i] {
					t.Fatalf("window[%d].ID=%d want %d", i, ev.ID, c.wantIDs[i])
				}
			}
		})
	}
}

func TestAfter(t *testing.T) {
	l := newLog("t")
	for i := 0; i < 5; i++ {
		l.Append("w", "x")
	}
	got := l.After(2, 2)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 4 {
		t.Fatalf("unexpected page: %+v", got)
	}
	if all := l.After(0, 0); len(all) != 5 {
		t.Fatalf("expected full history, got %d", len(all))
	}
	if tail := l.After(5, 10); tail != nil {
		t.Fatalf("expected nil past end, got %+v", tail)
	}
	if neg := l.After(-3, 2); len(neg) != 2 || neg[0].ID != 1 {
		t.Fatalf("negative after should clamp to start: %+v", neg)
	}
}
