package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rzbill/waymark/internal/runtime"
	"github.com/rzbill/waymark/internal/server/http/controllers"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
)

type Server struct {
	rt  *runtime.Runtime
	srv *http.Server
	lis net.Listener
}

// New constructs an HTTP server with fresh service instances.
func New(rt *runtime.Runtime) *Server {
	msg := messagingsvc.NewWithLogger(rt.Store(), rt.Logger().WithComponent("messaging"))
	routes := routesvc.NewWithLogger(rt.Features(), rt.Logger().WithComponent("routes"))
	return NewWithServices(rt, msg, routes)
}

// NewWithServices constructs an HTTP server around existing service
// instances, so the gRPC transport can share subscriptions and note boards
// with this one.
func NewWithServices(rt *runtime.Runtime, msg *messagingsvc.Service, routes *routesvc.Service) *Server {
	mux := http.NewServeMux()
	controllers.NewControllerRegistry(rt, msg, routes).RegisterAllRoutes(mux)
	return &Server{rt: rt, srv: &http.Server{Handler: cors(mux)}}
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close closes the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
