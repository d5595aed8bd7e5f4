package serverrun

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	cfgpkg "github.com/rzbill/waymark/internal/config"
	"github.com/rzbill/waymark/internal/runtime"
	grpcserver "github.com/rzbill/waymark/internal/server/grpc"
	httpserver "github.com/rzbill/waymark/internal/server/http"
	messagingsvc "github.com/rzbill/waymark/internal/services/messaging"
	routesvc "github.com/rzbill/waymark/internal/services/routes"
	logpkg "github.com/rzbill/waymark/pkg/log"
)

func getenvDefault(key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

var getenv = func(key string) string { return os.Getenv(key) }

type Options struct {
	GRPCAddr string
	HTTPAddr string
	Config   cfgpkg.Config
}

// Run starts gRPC and HTTP servers and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context
	// or if signal delivery needs to be observed here. We layer a
	// local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.GRPCAddr == "" {
		opts.GRPCAddr = opts.Config.GRPCAddr
	}
	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}

	// Build process-wide logger using env/ApplyConfig; defaults come from the
	// loaded config with env taking precedence.
	cfg := &logpkg.Config{
		Level:  getenvDefault("WAYMARK_LOG_LEVEL", opts.Config.Log.Level),
		Format: getenvDefault("WAYMARK_LOG_FORMAT", opts.Config.Log.Format),
	}
	procLogger, err := logpkg.ApplyConfig(cfg)
	if err != nil {
		// Fallback to a sane default
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(cfg.Level); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	// Redirect stdlib logs (e.g., net/http) to our logger
	logpkg.RedirectStdLog(procLogger)

	rt, err := runtime.Open(runtime.Options{
		Config: opts.Config,
		Logger: procLogger.With(logpkg.Component("runtime")),
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	features := opts.Config.FeaturesFile
	if features == "" {
		features = "embedded"
	}
	procLogger.Info("Starting Waymark server",
		logpkg.Str("grpc", opts.GRPCAddr),
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("features", features),
		logpkg.Bool("watch_features", opts.Config.WatchFeatures),
		logpkg.Str("level", cfg.Level),
		logpkg.Str("format", cfg.Format),
	)

	// Create shared service instances for both transports
	msgSvc := messagingsvc.NewWithLogger(rt.Store(), procLogger.With(logpkg.Component("messaging")))
	routesSvc := routesvc.NewWithLogger(rt.Features(), procLogger.With(logpkg.Component("routes")))
	gsrv := grpcserver.NewWithServices(rt, msgSvc, routesSvc)
	hsrv := httpserver.NewWithServices(rt, msgSvc, routesSvc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gsrv.ListenAndServe(sctx, opts.GRPCAddr); err != nil && sctx.Err() == nil {
			log.Printf("grpc error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.HTTPAddr); err != nil && sctx.Err() == nil {
			log.Printf("http error: %v", err)
		}
	}()

	<-sctx.Done()
	// Initiate graceful shutdown of servers before closing the runtime to
	// avoid races with in-flight subscriptions.
	gsrv.Close()
	hsrv.Close()
	wg.Wait()
	return nil
}
