// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("watcher closed")

// Settle is how long Next keeps absorbing events after the first relevant
// one, so that an editor's write-rename-chmod burst counts once.
const Settle = 100 * time.Millisecond

// Watcher watches the parent directories of its files and filters events
// down to the files themselves. Watching directories keeps working when an
// editor replaces a file instead of writing it in place.
type Watcher struct {
	w     *fsnotify.Watcher
	files map[string]bool
}

// New starts watching files.
func New(files []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{w: fw, files: make(map[string]bool, len(files))}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	zap.L().Debug("watching files", zap.Strings("files", w.Files()))
	return w, nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Close stops the watcher. A blocked Next returns ErrClosed.
func (w *Watcher) Close() error {
	return w.w.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// Next blocks until one of the files changes and returns its path.
func (w *Watcher) Next(ctx context.Context) (string, error) {
	var changed string
	for changed == "" {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return "", ErrClosed
			}
			if w.relevant(ev) {
				changed = ev.Name
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return "", ErrClosed
			}
			zap.L().Warn("file watcher error", zap.Error(err))
		}
	}

	timer := time.NewTimer(Settle)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return changed, nil
		case <-timer.C:
			zap.L().Info("file changed", zap.String("path", changed))
			return changed, nil
		case _, ok := <-w.w.Events:
			if !ok {
				return changed, nil
			}
		case _, ok := <-w.w.Errors:
			if !ok {
				return changed, nil
			}
		}
	}
}

// Loop calls fn for every change to files until ctx is done.
func Loop(ctx context.Context, files []string, fn func(path string)) error {
	w, err := New(files)
	if err != nil {
		return err
	}
	defer w.Close()
	for {
		path, err := w.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		fn(path)
	}
}
