package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchOp is the kind of change of a driver module file.
type WatchOp int

const (
	// WatchAdded reports a new or rewritten module file.
	WatchAdded WatchOp = iota

	// WatchRemoved reports a removed or renamed module file.
	WatchRemoved
)

// String returns "added" or "removed".
func (op WatchOp) String() string {
	if op == WatchRemoved {
		return "removed"
	}
	return "added"
}

// WatchEvent is a change of a driver module file.
type WatchEvent struct {
	// Name is the driver name.
	Name string

	// Path is the module file path.
	Path string

	Op WatchOp
}

// Watch reports changes of module files in dir until ctx is done. fn is
// called from a single goroutine. Resident modules are not affected: a
// rewritten file is only picked up by a new process.
func (l *Loader) Watch(ctx context.Context, dir string, fn func(WatchEvent)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	l.infoLog("watching driver directory", "dir", dir)
	go l.watchLoop(ctx, watcher, fn)
	return nil
}

func (l *Loader) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, fn func(WatchEvent)) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			ev, ok := l.watchEvent(event)
			if !ok {
				continue
			}
			l.debugLog("driver file changed", "path", ev.Path, "name", ev.Name, "op", ev.Op.String())
			l.metrics.watchEvent(ev.Op.String())
			fn(ev)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.infoLog("driver watcher error", "reason", err)
		}
	}
}

func (l *Loader) watchEvent(event fsnotify.Event) (WatchEvent, bool) {
	name, ok := l.ParseFileName(filepath.Base(event.Name))
	if !ok {
		return WatchEvent{}, false
	}

	ev := WatchEvent{Name: name, Path: event.Name}
	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		ev.Op = WatchAdded
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		ev.Op = WatchRemoved
	default:
		return WatchEvent{}, false
	}
	return ev, true
}
