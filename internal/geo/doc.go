// Package geo implements Waymark's coordinate math and feature lookup.
//
// # Overview
//
// Positions use the E7 representation: decimal degrees scaled by 1e7 and
// stored as int32, identical to the wire schema. Points are comparable values
// and serve directly as map keys, which is what makes exact-match feature
// lookup and per-location note sequences cheap.
//
// API surface (internal)
//
//	ix := geo.NewFeatureIndex()
//	ix.Replace(features)             // atomic dataset swap
//	f := ix.At(p)                    // miss yields an unnamed feature at p
//	within := ix.Within(geo.Rect{Lo: a, Hi: b})
//
//	d := geo.Haversine(a, b)         // whole meters, truncated
//
// The default dataset ships embedded; deployments can point the server at a
// JSON file instead and WatchFile hot-reloads the index when it changes.
package geo
