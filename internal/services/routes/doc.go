// Package routesvc implements Waymark's route telemetry: feature lookup,
// per-call trip accumulation, and location-keyed note exchange.
//
// # Overview
//
// Feature lookups are exact-match reads against the shared geo.FeatureIndex.
// A TripRecorder belongs to exactly one client-streaming call and dies with
// it, so it carries no locks. The NoteBoard gives every location its own
// note sequence and lock; an exchange atomically snapshots what was there
// and appends the new note, which means a submitter never gets its own note
// echoed back and the next caller at that location sees it.
package routesvc
