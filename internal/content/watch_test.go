package content

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tessro/stepwise/internal/core"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	require.Equal(t, int32(1), calls.Load())
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() { called.Store(true) })
	d.Cancel()
	time.Sleep(80 * time.Millisecond)

	require.False(t, called.Load())
}

func TestDebouncerDefault(t *testing.T) {
	require.Equal(t, DefaultDebounceDuration, NewDebouncer(0).Duration())
}

func TestWatcherReloadsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", heapYAML)

	reloaded := make(chan *core.Corpus, 4)
	w, err := NewWatcher(dir,
		WithDebounce(20*time.Millisecond),
		WithOnReload(func(c *core.Corpus, _ error) { reloaded <- c }),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.ErrorIs(t, w.Start(context.Background()), ErrWatchStarted)

	writeFile(t, dir, "b.json", listJSON)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case c := <-reloaded:
			// An editor-style write can surface as several reloads; wait
			// for the one that sees the complete file.
			if c.Len() == 3 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after adding a topic file")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "topics.yaml", heapYAML)

	var reloads atomic.Int32
	w, err := NewWatcher(p,
		WithDebounce(20*time.Millisecond),
		WithOnReload(func(*core.Corpus, error) { reloads.Add(1) }),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)

	require.Equal(t, int32(0), reloads.Load())
}

func TestNewWatcherMissingPath(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
