package grpcserver

import (
	"context"
	"net"

	waymarkv1 "github.com/rzbill/waymark/api/waymark/v1"
	"github.com/rzbill/waymark/internal/runtime"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
	"google.golang.org/grpc"
)

// Server owns the gRPC server instance and runtime.
type Server struct {
	rt     *runtime.Runtime
	msg    *messagingsvc.Service
	routes *routesvc.Service
	grpc   *grpc.Server
	lis    net.Listener
}

// New constructs a gRPC server with fresh service instances.
func New(rt *runtime.Runtime, opts ...grpc.ServerOption) *Server {
	msg := messagingsvc.NewWithLogger(rt.Store(), rt.Logger().WithComponent("messaging"))
	routes := routesvc.NewWithLogger(rt.Features(), rt.Logger().WithComponent("routes"))
	return NewWithServices(rt, msg, routes, opts...)
}

// NewWithServices constructs a gRPC server around existing service
// instances, so another transport can share subscriptions and note boards
// with this one.
func NewWithServices(rt *runtime.Runtime, msg *messagingsvc.Service, routes *routesvc.Service, opts ...grpc.ServerOption) *Server {
	s := &Server{rt: rt, msg: msg, routes: routes, grpc: grpc.NewServer(opts...)}
	waymarkv1.RegisterHealthServiceServer(s.grpc, &healthSvc{rt: rt})
	waymarkv1.RegisterMessagingServiceServer(s.grpc, &messagingSvc{svc: msg})
	waymarkv1.RegisterRoutesServiceServer(s.grpc, &routesSvc{svc: routes})
	return s
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
