package config

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// reloadDebounce absorbs the burst of events editors produce on save.
const reloadDebounce = 250 * time.Millisecond

// Watch reloads the config file at path whenever it changes and passes
// each new valid config to onReload. Invalid or unchanged configs are
// logged and skipped. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors
// which save by rename are still picked up.
func Watch(ctx context.Context, path, dataDir string, logger zerolog.Logger, onReload func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch config dir %s: %w", dir, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
		last  *Config
	)
	if cfg, err := Load(path, dataDir); err == nil {
		last = cfg
	}

	reload := func() {
		cfg, err := Load(path, dataDir)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("config reload rejected")
			return
		}

		mu.Lock()
		unchanged := last != nil && reflect.DeepEqual(*last, *cfg)
		if !unchanged {
			last = cfg
		}
		mu.Unlock()

		if unchanged {
			logger.Debug().Str("path", path).Msg("config unchanged; skipping reload")
			return
		}

		logger.Info().Str("path", path).Msg("config reloaded")
		onReload(cfg)
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			logger.Debug().Str("path", path).Str("op", ev.Op.String()).Msg("config change detected")
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, reload)
			mu.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}
