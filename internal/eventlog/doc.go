// Package eventlog implements Waymark's in-memory broadcast history.
//
// # Overview
//
// Every topic owns an append-only Log of events. Ids are assigned at append
// time as size+1, so the id of an event equals its 1-based position and the
// id of the newest event equals the log length. A subscriber cursor is
// therefore both "events already seen" and "id of the last seen event".
//
// API surface (internal)
//
//	st := eventlog.NewStore()
//	l := st.GetOrCreate("lobby")
//
//	// Append assigns the next id and returns the stored event
//	ev := l.Append("ada", "hello")
//
//	// Replay window for a subscriber that has seen `cursor` events and
//	// wants at most maxCount of the newest backlog
//	backlog := l.Window(cursor, maxCount)
//
//	// Forward listing for HTTP reads
//	items := l.After(afterID, limit)
//
//	// Blocking wait/notify for long-poll readers
//	woke := l.WaitForAppend(200 * time.Millisecond)
//	_ = woke
//
// Logs are never trimmed; history is bounded only by process memory, which
// matches the runtime's ephemeral, restart-resets-everything contract.
package eventlog
