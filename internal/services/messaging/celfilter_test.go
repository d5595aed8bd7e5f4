package messagingsvc

import (
	"testing"

	"github.com/rzbill/waymark/internal/eventlog"
)

func TestCELFilterDisabledMatchesAll(t *testing.T) {
	f, err := newCELFilter("   ")
	if err != nil {
		t.Fatalf("blank filter: %v", err)
	}
	if !f.Eval(&eventlog.Event{Topic: "any"}) {
		t.Fatalf("disabled filter must match everything")
	}
}

func TestCELFilterFields(t *testing.T) {
	cases := []struct {
		name string
		expr string
		ev   eventlog.Event
		want bool
	}{
		{"author match", `author == "ada"`, eventlog.Event{Author: "ada"}, true},
		{"author mismatch", `author == "ada"`, eventlog.Event{Author: "bob"}, false},
		{"id threshold", `id > 2`, eventlog.Event{ID: 3}, true},
		{"id below threshold", `id > 2`, eventlog.Event{ID: 2}, false},
		{"text contains", `text.contains("alert")`, eventlog.Event{Text: "red alert"}, true},
		{"topic and author", `topic == "ops" && author != ""`, eventlog.Event{Topic: "ops", Author: "x"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := newCELFilter(c.expr)
			if err != nil {
				t.Fatalf("compile %q: %v", c.expr, err)
			}
			if got := f.Eval(&c.ev); got != c.want {
				t.Fatalf("Eval(%q)=%v want %v", c.expr, got, c.want)
			}
		})
	}
}

func TestCELFilterCompileError(t *testing.T) {
	if _, err := newCELFilter("(("); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := newCELFilter("unknown_var == 1"); err == nil {
		t.Fatalf("expected check error for unknown variable")
	}
}

func TestCELFilterNonBooleanDrops(t *testing.T) {
	f, err := newCELFilter("id")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if f.Eval(&eventlog.Event{ID: 1}) {
		t.Fatalf("non-boolean result must drop the event")
	}
}

func TestCELFilterApplyKeepsOrder(t *testing.T) {
	f, err := newCELFilter(`id != 2`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	in := []*eventlog.Event{{ID: 1}, {ID: 2}, {ID: 3}}
	out := f.Apply(in)
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
		t.Fatalf("unexpected apply result: %+v", out)
	}
}
