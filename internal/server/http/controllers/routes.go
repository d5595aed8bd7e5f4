package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rzbill/waymark/internal/geo"
	"github.com/rzbill/waymark/internal/runtime"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
)

// RoutesController handles all route-related HTTP endpoints.
//
// It provides a JSON interface to the routes service: feature lookup,
// features-in-rectangle, one-shot trip summaries, and location note
// exchange.
type RoutesController struct {
	rt     *runtime.Runtime
	routes *routesvc.Service
}

// NewRoutesController creates a new routes controller.
func NewRoutesController(rt *runtime.Runtime, svc *routesvc.Service) *RoutesController {
	return &RoutesController{rt: rt, routes: svc}
}

// RegisterRoutes registers all route-related routes with the given mux.
//
// This method sets up HTTP endpoints for:
// - Feature lookup (/v1/routes/feature)
// - Features in a rectangle (/v1/routes/features)
// - Trip summaries (/v1/routes/trip)
// - Note exchange and listing (/v1/routes/notes)
func (c *RoutesController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/routes/feature", c.handleGetFeature)
	mux.HandleFunc("/v1/routes/features", c.handleListFeatures)
	mux.HandleFunc("/v1/routes/trip", c.handleTrip)
	mux.HandleFunc("/v1/routes/notes", c.handleNotes)
}

// handleGetFeature looks up the feature at an exact point.
// Query params: lat, lon (E7 integers). A miss returns an unnamed feature.
func (c *RoutesController) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	p, ok := pointFromQuery(r, "lat", "lon")
	if !ok {
		writeError(w, http.StatusBadRequest, "lat and lon parameters are required")
		return
	}
	writeJSON(w, featureToJSON(c.routes.GetFeature(p)))
}

// handleListFeatures lists named features inside a rectangle.
// Query params: lo_lat, lo_lon, hi_lat, hi_lon (E7 integers, corners in any
// order).
func (c *RoutesController) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	lo, okLo := pointFromQuery(r, "lo_lat", "lo_lon")
	hi, okHi := pointFromQuery(r, "hi_lat", "hi_lon")
	if !okLo || !okHi {
		writeError(w, http.StatusBadRequest, "lo_lat, lo_lon, hi_lat and hi_lon parameters are required")
		return
	}
	features := c.routes.ListFeatures(geo.Rect{Lo: lo, Hi: hi})
	writeJSON(w, map[string]any{"features": featuresToJSON(features)})
}

// handleTrip summarizes a complete trip submitted as a JSON points array.
func (c *RoutesController) handleTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req tripReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	trip := c.routes.NewTrip()
	for _, p := range req.Points {
		if err := trip.Observe(p.toPoint()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to record trip")
			return
		}
	}
	sum := trip.Summary()
	writeJSON(w, tripSummaryJSON{
		PointCount:     sum.PointCount,
		FeatureCount:   sum.FeatureCount,
		DistanceMeters: sum.DistanceMeters,
		ElapsedSeconds: sum.ElapsedSeconds,
	})
}

// handleNotes exchanges or lists notes at a location.
//
// POST exchanges: the body note is stored and the notes already at its
// location are returned, oldest first, excluding the one just added.
// GET lists the notes at a location without storing anything.
func (c *RoutesController) handleNotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req noteReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		prior := c.routes.ExchangeNotes(req.Location.toPoint(), req.Text)
		writeJSON(w, map[string]any{"notes": notesToJSON(prior)})
	case http.MethodGet:
		p, ok := pointFromQuery(r, "lat", "lon")
		if !ok {
			writeError(w, http.StatusBadRequest, "lat and lon parameters are required")
			return
		}
		writeJSON(w, map[string]any{"notes": notesToJSON(c.routes.Notes(p))})
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// pointFromQuery reads an E7 point from two query parameters.
func pointFromQuery(r *http.Request, latKey, lonKey string) (geo.Point, bool) {
	q := r.URL.Query()
	lat, okLat := parseCoord(q.Get(latKey))
	lon, okLon := parseCoord(q.Get(lonKey))
	if !okLat || !okLon {
		return geo.Point{}, false
	}
	return geo.Point{Lat: lat, Lon: lon}, true
}
