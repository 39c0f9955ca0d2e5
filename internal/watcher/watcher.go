// Package watcher triggers re-scans when files under a root change.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/secinspect/internal/walker"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period after the last event before a change
// is reported.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches every directory under a root except the fixed ignore set.
// Directories created later are picked up as they appear.
type Watcher struct {
	logger    zerolog.Logger
	fsWatcher *fsnotify.Watcher
	root      string
	debounce  time.Duration
	excluded  map[string]struct{}
}

// New creates a Watcher for root. A non-positive debounce selects
// DefaultDebounce.
func New(root string, debounce time.Duration, logger zerolog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch root '%s': %w", root, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		logger:    logger.With().Str("module", "Watcher").Logger(),
		fsWatcher: fsWatcher,
		root:      absRoot,
		debounce:  debounce,
		excluded:  make(map[string]struct{}),
	}

	if err := w.addRecursive(absRoot); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w.logger.Info().Str("root", absRoot).Int("directories", len(fsWatcher.WatchList())).Msg("Watching for changes")
	return w, nil
}

// Exclude makes events for the given files invisible, typically the
// report outputs when they live inside the watched tree. Call it before
// Run.
func (w *Watcher) Exclude(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			w.excluded[abs] = struct{}{}
		}
	}
}

// Run calls onChange once per burst of events until ctx is done. onChange
// runs on the calling goroutine, so invocations never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	timer := time.NewTimer(0)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Watch loop stopped due to context cancellation")
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Change detected")

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						w.logger.Warn().Err(err).Str("dir", event.Name).Msg("Failed to watch new directory")
					}
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("File watcher error")

		case <-timer.C:
			onChange()
		}
	}
}

// Close releases the underlying watches.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if w.isExcluded(event.Name) {
		return false
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if walker.IsIgnoredDir(part) {
			return false
		}
	}
	return true
}

// isExcluded also matches the temp files of atomic writes to an excluded
// path.
func (w *Watcher) isExcluded(name string) bool {
	if _, ok := w.excluded[name]; ok {
		return true
	}
	for path := range w.excluded {
		if strings.HasPrefix(name, path+".tmp.") {
			return true
		}
	}
	return false
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("failed to watch '%s': %w", path, err)
			}
			w.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && walker.IsIgnoredDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch '%s': %w", path, err)
		}
		return nil
	})
}
