package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"toolindex/internal/domain"
)

// Watcher regenerates the index whenever tool documents change.
// Events are debounced so an editor save burst produces one
// regeneration; a zero debounce disables coalescing and regenerates
// per event. A failing regeneration (e.g. a half-written tool with no
// description yet) is logged and leaves the last good index in place.
type Watcher struct {
	logger     *zap.Logger
	service    *IndexService
	debounce   time.Duration
	regenerate func(context.Context) error
}

func NewWatcher(service *IndexService, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		logger:   logger.Named("watch"),
		service:  service,
		debounce: service.Config().WatchDebounce,
	}
	w.regenerate = func(ctx context.Context) error {
		_, err := service.Generate(ctx)
		return err
	}
	return w
}

// Run generates once, then blocks watching the tools directory until
// ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.regenerate(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := w.service.Config().Dir
	if err := watcher.Add(dir); err != nil {
		return err
	}
	w.logger.Info("watching for tool changes",
		zap.String("dir", dir),
		zap.Duration("debounce", w.debounce))

	return w.loop(ctx, watcher.Events, watcher.Errors)
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			if err != nil {
				w.logger.Warn("watcher error", zap.Error(err))
			}
		case event := <-events:
			if !w.shouldRegenerateFor(event.Name) {
				continue
			}
			if w.debounce <= 0 {
				w.runRegenerate(ctx)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timerChan(timer):
			timer = nil
			w.runRegenerate(ctx)
		}
	}
}

func (w *Watcher) runRegenerate(ctx context.Context) {
	if err := w.regenerate(ctx); err != nil {
		w.logger.Warn("regeneration failed, keeping previous index", zap.Error(err))
	}
}

// shouldRegenerateFor filters watch events down to inputs of the
// index: tool documents, the template, and the config file. The index
// file itself is ignored or every generation would trigger another.
func (w *Watcher) shouldRegenerateFor(path string) bool {
	name := filepath.Base(path)
	cfg := w.service.Config()
	if strings.EqualFold(name, cfg.IndexFile) {
		return false
	}
	if strings.EqualFold(name, cfg.TemplateFile) || strings.EqualFold(name, domain.DefaultConfigFileName) {
		return true
	}
	return strings.EqualFold(filepath.Ext(name), ".html")
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
