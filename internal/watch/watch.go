// Package watch reports batches of changed files under a directory tree.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period before a batch of changes is reported.
const DefaultDebounce = 150 * time.Millisecond

// ErrWatcherClosed indicates fsnotify closed its channels unexpectedly.
var ErrWatcherClosed = errors.New("file watcher closed")

type config struct {
	debounce time.Duration
	match    func(path string) bool
	logger   zerolog.Logger
}

// Option configures Watch.
type Option func(*config)

// WithDebounce sets the quiet period. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithMatch restricts reported paths to those accepted by fn.
func WithMatch(fn func(path string) bool) Option {
	return func(c *config) { c.match = fn }
}

// WithLogger sets the logger for watcher errors and events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Watch watches root recursively and calls onChange with the sorted, unique
// paths changed during each debounce window. Directories created later are
// added. Hidden directories are skipped. Watch blocks until ctx is done and
// then returns nil; onChange runs on the watching goroutine.
func Watch(ctx context.Context, root string, onChange func(paths []string), opts ...Option) error {
	cfg := config{
		debounce: DefaultDebounce,
		match:    func(string) bool { return true },
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := addRecursive(w, root, nil); err != nil {
		return err
	}
	cfg.logger.Debug().Str("root", root).Dur("debounce", cfg.debounce).Msg("watching")

	pending := make(map[string]struct{})
	timer := time.NewTimer(cfg.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrWatcherClosed
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				// Files copied or checked out with the directory produce no
				// events of their own.
				found := 0
				err := addRecursive(w, event.Name, func(path string) {
					if cfg.match(path) {
						pending[path] = struct{}{}
						found++
					}
				})
				if err != nil {
					cfg.logger.Warn().Err(err).Str("path", event.Name).Msg("cannot watch new directory")
				}
				if found > 0 {
					cfg.logger.Trace().Str("path", event.Name).Int("files", found).Msg("new directory")
					timer.Reset(cfg.debounce)
				}
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !cfg.match(event.Name) {
				continue
			}
			cfg.logger.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("event")
			pending[event.Name] = struct{}{}
			timer.Reset(cfg.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			clear(pending)
			onChange(paths)

		case err, ok := <-w.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrWatcherClosed
			}
			cfg.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// addRecursive watches root and its non-hidden subdirectories. When file is
// non-nil it is called for every regular file found on the way.
func addRecursive(w *fsnotify.Watcher, root string, file func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if file != nil && d.Type().IsRegular() {
				file(path)
			}
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
