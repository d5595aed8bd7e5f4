// Package messagingsvc implements Waymark's broadcast core: publish with
// append-then-fanout, and subscribe with atomic backlog replay.
//
// # Overview
//
// Every publish appends to the topic's event log and fans the stored event
// out to the topic's live subscriptions inside one per-topic critical
// section. Subscribe registers its subscription and computes its replay
// window inside that same section, so the window boundary is exact: an event
// is either in the backlog or delivered live, never both, never neither.
// Events fanned out while a subscriber is still replaying are buffered by its
// subscription and flushed in order afterwards.
//
// A failing sink is the failing subscriber's problem alone: fan-out delivers
// to everyone first, then prunes the subscriptions whose sinks errored.
//
// Subscriptions may carry a CEL filter over {topic, author, text, id};
// non-matching events are skipped for that subscriber in both replay and
// live delivery.
package messagingsvc
