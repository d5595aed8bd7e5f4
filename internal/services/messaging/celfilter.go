package messagingsvc

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/rzbill/waymark/internal/eventlog"
)

// celFilter wraps a compiled CEL program evaluated per event. When the
// expression is empty the filter is disabled and every event matches.
type celFilter struct {
	prog    cel.Program
	enabled bool
}

func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("topic", cel.StringType),
		cel.Variable("author", cel.StringType),
		cel.Variable("text", cel.StringType),
		cel.Variable("id", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return celFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog, enabled: true}, nil
}

// Eval reports whether ev matches. Evaluation errors and non-boolean results
// drop the event for this subscriber.
func (f celFilter) Eval(ev *eventlog.Event) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"topic":  ev.Topic,
		"author": ev.Author,
		"text":   ev.Text,
		"id":     ev.ID,
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// Apply returns the events that match, preserving order.
func (f celFilter) Apply(events []*eventlog.Event) []*eventlog.Event {
	if !f.enabled {
		return events
	}
	var out []*eventlog.Event
	for _, ev := range events {
		if f.Eval(ev) {
			out = append(out, ev)
		}
	}
	return out
}
