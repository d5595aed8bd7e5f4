package controllers

import (
	"github.com/rzbill/waymark/internal/eventlog"
	"github.com/rzbill/waymark/internal/geo"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
)

// Common request/response types for HTTP controllers

// messageJSON is the wire form of a stored message.
type messageJSON struct {
	Topic  string `json:"topic"`
	Author string `json:"author"`
	Text   string `json:"text"`
	ID     int64  `json:"id"`
}

func messageToJSON(ev *eventlog.Event) messageJSON {
	return messageJSON{Topic: ev.Topic, Author: ev.Author, Text: ev.Text, ID: ev.ID}
}

func messagesToJSON(events []*eventlog.Event) []messageJSON {
	out := make([]messageJSON, 0, len(events))
	for _, ev := range events {
		out = append(out, messageToJSON(ev))
	}
	return out
}

// publishReq represents a request to publish a message to a topic.
type publishReq struct {
	Topic  string `json:"topic"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

// pointJSON is the wire form of an E7 position.
type pointJSON struct {
	Latitude  int32 `json:"latitude"`
	Longitude int32 `json:"longitude"`
}

func (p pointJSON) toPoint() geo.Point { return geo.Point{Lat: p.Latitude, Lon: p.Longitude} }

func pointToJSON(p geo.Point) pointJSON { return pointJSON{Latitude: p.Lat, Longitude: p.Lon} }

// featureJSON is the wire form of a feature lookup result.
type featureJSON struct {
	Name     string    `json:"name"`
	Location pointJSON `json:"location"`
}

func featureToJSON(f geo.Feature) featureJSON {
	return featureJSON{Name: f.Name, Location: pointToJSON(f.Location)}
}

func featuresToJSON(features []geo.Feature) []featureJSON {
	out := make([]featureJSON, 0, len(features))
	for _, f := range features {
		out = append(out, featureToJSON(f))
	}
	return out
}

// tripReq represents a complete trip submitted as one request.
type tripReq struct {
	Points []pointJSON `json:"points"`
}

// tripSummaryJSON is the wire form of a trip summary.
type tripSummaryJSON struct {
	PointCount     int `json:"point_count"`
	FeatureCount   int `json:"feature_count"`
	DistanceMeters int `json:"distance_meters"`
	ElapsedSeconds int `json:"elapsed_seconds"`
}

// noteReq represents a note exchange request.
type noteReq struct {
	Location pointJSON `json:"location"`
	Text     string    `json:"text"`
}

// noteJSON is the wire form of a stored note.
type noteJSON struct {
	Location pointJSON `json:"location"`
	Text     string    `json:"text"`
}

func notesToJSON(notes []routesvc.Note) []noteJSON {
	out := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteJSON{Location: pointToJSON(n.Location), Text: n.Text})
	}
	return out
}
