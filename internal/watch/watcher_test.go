package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func startWatcher(t *testing.T, delay time.Duration, paths ...string) (<-chan Event, context.CancelFunc, <-chan error) {
	t.Helper()

	w, err := New(zaptest.NewLogger(t), delay)
	require.NoError(t, err)
	for _, p := range paths {
		require.NoError(t, w.Add(p))
	}

	events := make(chan Event, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ev Event) { events <- ev })
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return events, cancel, done
}

func TestWatcherReportsChangesToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "swagger.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(spec, []byte("{}"), 0o644))

	events, _, _ := startWatcher(t, 20*time.Millisecond, spec)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(spec, []byte(`{"swagger": "2.0"}`), 0o644))

	select {
	case ev := <-events:
		require.Equal(t, spec, ev.Path)
		require.NotEqual(t, "unknown", ev.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "swagger.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("a"), 0o644))

	events, _, _ := startWatcher(t, 300*time.Millisecond, spec, spec)

	for i := range 5 {
		require.NoError(t, os.WriteFile(spec, []byte{byte('a' + i)}, 0o644))
	}

	select {
	case ev := <-events:
		require.Equal(t, spec, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}

	time.Sleep(500 * time.Millisecond)
	require.Less(t, len(events), 4)
}

func TestWatcherStopsOnCancel(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(spec, []byte("{}"), 0o644))

	_, cancel, done := startWatcher(t, 20*time.Millisecond, spec)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherAddMissingDirectory(t *testing.T) {
	w, err := New(nil, 0)
	require.NoError(t, err)
	defer w.close()

	err = w.Add(filepath.Join(t.TempDir(), "missing", "swagger.json"))
	require.Error(t, err)
}

func TestDebouncerStop(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	var calls atomic.Int32
	d.debounce("k", func() { calls.Add(1) })
	d.stop()
	d.debounce("k", func() { calls.Add(1) })

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestDebouncerStopWaitsForRunningCall(t *testing.T) {
	d := newDebouncer(time.Millisecond)
	started := make(chan struct{})
	var finished atomic.Bool
	d.debounce("k", func() {
		close(started)
		time.Sleep(100 * time.Millisecond)
		finished.Store(true)
	})

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("debounced call did not start")
	}

	d.stop()
	require.True(t, finished.Load())
}
