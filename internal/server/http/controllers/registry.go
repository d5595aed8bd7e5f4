package controllers

import (
	"net/http"

	"github.com/rzbill/waymark/internal/runtime"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes
// and manages the lifecycle of individual controllers.
type ControllerRegistry struct {
	general   *GeneralController
	messaging *MessagingController
	routes    *RoutesController
}

// NewControllerRegistry creates a new controller registry.
//
// It initializes all controllers with the provided runtime and services.
func NewControllerRegistry(rt *runtime.Runtime, msgSvc *messagingsvc.Service, routesSvc *routesvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general:   NewGeneralController(rt),
		messaging: NewMessagingController(rt, msgSvc),
		routes:    NewRoutesController(rt, routesSvc),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
//
// This method sets up all HTTP endpoints for the Waymark service:
// general endpoints (health, Prometheus metrics), topic endpoints, and
// route/feature endpoints.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.messaging.RegisterRoutes(mux)
	r.routes.RegisterRoutes(mux)
}
