package grpcserver

import (
	"context"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"github.com/rzbill/waymark/internal/runtime"
)

type healthSvc struct {
	waymarkv1.UnimplementedHealthServiceServer
	rt *runtime.Runtime
}

func (h *healthSvc) Check(ctx context.Context, _ *waymarkv1.HealthCheckRequest) (*waymarkv1.HealthCheckResponse, error) {
	if err := h.rt.CheckHealth(ctx); err != nil {
		return &waymarkv1.HealthCheckResponse{Status: "not_serving"}, nil
	}
	return &waymarkv1.HealthCheckResponse{Status: "ok"}, nil
}
