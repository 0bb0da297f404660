// Package watch re-runs a callback when topic documents change on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/docstyle/internal/logging"
)

// DefaultDebounce is the quiet period before a batch of changes is delivered.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Roots are the files and directories to watch. Directories are watched
	// recursively; hidden subdirectories are skipped.
	Roots []string

	// Extensions selects the files inside watched directories that count as
	// changes. Explicitly named files always count.
	Extensions []string

	// Debounce is the quiet period before changes are delivered.
	// Zero means DefaultDebounce.
	Debounce time.Duration

	// SkipDir reports whether a directory should not be watched.
	SkipDir func(path string) bool
}

// ChangeFunc receives the sorted, deduplicated paths changed in one batch.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher delivers debounced change batches for a set of roots.
type Watcher struct {
	fs       *fsnotify.Watcher
	opts     Options
	files    map[string]bool // explicitly named files
	treeDirs map[string]bool // directories watched recursively
}

// New creates a Watcher and registers every root.
func New(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fs:       fsw,
		opts:     opts,
		files:    make(map[string]bool),
		treeDirs: make(map[string]bool),
	}

	for _, root := range opts.Roots {
		if err := w.addRoot(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Close releases the underlying watches.
func (w *Watcher) Close() error {
	if err := w.fs.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

// WatchedDirs returns the directories currently being watched.
func (w *Watcher) WatchedDirs() []string {
	dirs := w.fs.WatchList()
	slices.Sort(dirs)
	return dirs
}

func (w *Watcher) addRoot(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	if !info.IsDir() {
		// Editors often replace files on save, so watch the parent.
		w.files[abs] = true
		if err := w.fs.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		return nil
	}

	return w.addTree(abs)
}

// addTree watches dir and every non-hidden directory below it.
func (w *Watcher) addTree(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.skipDir(path) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.treeDirs[path] = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch tree %s: %w", dir, err)
	}
	return nil
}

func (w *Watcher) skipDir(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	return w.opts.SkipDir != nil && w.opts.SkipDir(path)
}

// relevant reports whether an event on path should trigger a re-run.
func (w *Watcher) relevant(path string) bool {
	if w.files[path] {
		return true
	}
	if !w.treeDirs[filepath.Dir(path)] {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(w.opts.Extensions, ext)
}

// Run delivers change batches to onChange until ctx is cancelled or
// onChange returns an error. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	return w.loop(ctx, w.fs.Events, w.fs.Errors, onChange)
}

func (w *Watcher) loop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	onChange ChangeFunc,
) error {
	logger := logging.FromContext(ctx)

	debounce := w.opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			if event.Has(fsnotify.Create) && w.treeDirs[filepath.Dir(event.Name)] {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.skipDir(event.Name) {
					if err := w.addTree(event.Name); err != nil {
						logger.Warn("cannot watch new directory", logging.FieldPath, event.Name, logging.FieldError, err)
					}
					continue
				}
			}

			if !w.relevant(event.Name) {
				continue
			}

			logger.Debug("document changed", logging.FieldPath, event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(debounce)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			slices.Sort(changed)
			clear(pending)

			if err := onChange(ctx, changed); err != nil {
				return err
			}
		}
	}
}
