package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	cfgpkg "github.com/rzbill/waymark/internal/config"
	"github.com/rzbill/waymark/internal/eventlog"
	"github.com/rzbill/waymark/internal/geo"
	logpkg "github.com/rzbill/waymark/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger logpkg.Logger
}

// Runtime wires the event store, the feature index, and config for a
// single-node instance. All state is in memory; Close only stops the
// optional feature file watcher.
type Runtime struct {
	store    *eventlog.Store
	features *geo.FeatureIndex
	config   cfgpkg.Config
	logger   logpkg.Logger

	watchCancel context.CancelFunc
	watchDone   chan struct{}

	closeOnce sync.Once
}

// Open loads the feature dataset and returns a Runtime. With
// Config.FeaturesFile unset the embedded dataset is used; with
// Config.WatchFeatures set a watcher goroutine reloads the file on change.
func Open(opts Options) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("runtime"))
	}

	features := geo.NewFeatureIndex()
	if path := opts.Config.FeaturesFile; path != "" {
		loaded, err := geo.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load features %s: %w", path, err)
		}
		features.Replace(loaded)
		logger.Info("feature dataset loaded",
			logpkg.Str("path", path),
			logpkg.Int("features", features.Len()),
		)
	} else {
		loaded, err := geo.DefaultFeatures()
		if err != nil {
			return nil, fmt.Errorf("load embedded features: %w", err)
		}
		features.Replace(loaded)
		logger.Info("embedded feature dataset loaded", logpkg.Int("features", features.Len()))
	}

	rt := &Runtime{
		store:    eventlog.NewStore(),
		features: features,
		config:   opts.Config,
		logger:   logger,
	}

	if opts.Config.WatchFeatures && opts.Config.FeaturesFile != "" {
		ctx, cancel := context.WithCancel(context.Background())
		rt.watchCancel = cancel
		rt.watchDone = make(chan struct{})
		go func() {
			defer close(rt.watchDone)
			if err := geo.WatchFile(ctx, opts.Config.FeaturesFile, features, logger); err != nil {
				logger.Warn("feature watcher stopped", logpkg.Err(err))
			}
		}()
	}

	return rt, nil
}

// Close stops the feature watcher if one is running.
func (r *Runtime) Close() error {
	r.closeOnce.Do(func() {
		if r.watchCancel != nil {
			r.watchCancel()
			<-r.watchDone
		}
	})
	return nil
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.store == nil || r.features == nil {
		return errors.New("runtime not open")
	}
	return nil
}

// Store returns the topic event store.
func (r *Runtime) Store() *eventlog.Store { return r.store }

// Features returns the shared feature index.
func (r *Runtime) Features() *geo.FeatureIndex { return r.features }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the runtime logger.
func (r *Runtime) Logger() logpkg.Logger { return r.logger }
