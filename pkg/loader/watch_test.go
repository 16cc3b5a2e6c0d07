package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsModuleFiles(t *testing.T) {
	dir := t.TempDir()
	l := New(Config{Opener: newFakeOpener()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan WatchEvent, 16)
	require.NoError(t, l.Watch(ctx, dir, func(ev WatchEvent) { events <- ev }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hyscan-a.drv"), []byte("x"), 0644))

	ev := waitEvent(t, events)
	assert.Equal(t, "a", ev.Name)
	assert.Equal(t, WatchAdded, ev.Op)

	// Drain follow-up write events for the same file.
	drain(events)

	require.NoError(t, os.Remove(filepath.Join(dir, "hyscan-a.drv")))
	ev = waitEvent(t, events)
	assert.Equal(t, "a", ev.Name)
	assert.Equal(t, WatchRemoved, ev.Op)
}

func TestWatchMissingDirectory(t *testing.T) {
	l := New(Config{Opener: newFakeOpener()})
	err := l.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), func(WatchEvent) {})
	assert.Error(t, err)
}

func TestWatchEventFilter(t *testing.T) {
	l := New(Config{Opener: newFakeOpener()})

	tests := []struct {
		event fsnotify.Event
		want  WatchEvent
		ok    bool
	}{
		{fsnotify.Event{Name: "/d/hyscan-a.drv", Op: fsnotify.Create}, WatchEvent{Name: "a", Path: "/d/hyscan-a.drv", Op: WatchAdded}, true},
		{fsnotify.Event{Name: "/d/hyscan-a.drv", Op: fsnotify.Write}, WatchEvent{Name: "a", Path: "/d/hyscan-a.drv", Op: WatchAdded}, true},
		{fsnotify.Event{Name: "/d/hyscan-a.drv", Op: fsnotify.Rename}, WatchEvent{Name: "a", Path: "/d/hyscan-a.drv", Op: WatchRemoved}, true},
		{fsnotify.Event{Name: "/d/hyscan-a.drv", Op: fsnotify.Chmod}, WatchEvent{}, false},
		{fsnotify.Event{Name: "/d/random.txt", Op: fsnotify.Create}, WatchEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := l.watchEvent(tt.event)
		assert.Equal(t, tt.ok, ok, tt.event.String())
		assert.Equal(t, tt.want, got, tt.event.String())
	}
}

func waitEvent(t *testing.T, events <-chan WatchEvent) WatchEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("no watch event")
		return WatchEvent{}
	}
}

func drain(events <-chan WatchEvent) {
	for {
		select {
		case <-events:
		case <-time.After(100 * time.Millisecond):
			return
		}
	}
}
