package geo

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/rzbill/waymark/pkg/log"
)

// WatchFile reloads ix from path whenever the file is rewritten. It blocks
// until ctx is cancelled or the watcher fails, so callers run it in its own
// goroutine. A reload that fails to parse keeps the previous dataset.
func WatchFile(ctx context.Context, path string, ix *FeatureIndex, logger log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("features watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Info("watching features file", log.Str("path", path))

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			features, err := LoadFile(path)
			if err != nil {
				logger.Warn("features reload failed", log.Str("path", path), log.Err(err))
				continue
			}
			ix.Replace(features)
			logger.Info("features reloaded", log.Str("path", path), log.Int("count", len(features)))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("features watcher: %w", err)
		case <-ctx.Done():
			return nil
		}
	}
}
