package streamsift_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/streamsift/streamsift-go/pkg/streamsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *streamsift.Engine {
	t.Helper()
	engine, err := streamsift.New(testConfig())
	require.NoError(t, err)
	return engine
}

// collect receives up to n classifications or fails after timeout.
func collect(t *testing.T, ch <-chan streamsift.Classification, n int) []streamsift.Classification {
	t.Helper()
	var out []streamsift.Classification
	deadline := time.After(10 * time.Second)
	for len(out) < n {
		select {
		case c, ok := <-ch:
			if !ok {
				t.Fatalf("result channel closed after %d of %d results", len(out), n)
			}
			out = append(out, c)
		case <-deadline:
			t.Fatalf("timed out after %d of %d results", len(out), n)
		}
	}
	return out
}

func TestWatcher_FromStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streams.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("Lakers vs Celtics\n\nWarriors vs Nets\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := streamsift.NewWatcher(newTestEngine(t), path, streamsift.WithWatchFromStart())
	defer w.Close()

	results, _, err := w.Watch(ctx)
	require.NoError(t, err)

	got := collect(t, results, 2)
	assert.Equal(t, "Lakers vs Celtics", got[0].Name)
	assert.Equal(t, streamsift.VerdictMatched, got[0].Verdict)
	assert.Equal(t, "Warriors vs Nets", got[1].Name)
	assert.Equal(t, streamsift.VerdictFilteredByInclude, got[1].Verdict)
}

func TestWatcher_AppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streams.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := streamsift.NewWatcher(newTestEngine(t), path, streamsift.WithWatchFromStart())
	defer w.Close()

	results, _, err := w.Watch(ctx)
	require.NoError(t, err)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("Lakers vs Suns (ES)\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got := collect(t, results, 1)
	assert.Equal(t, "Lakers vs Suns (ES)", got[0].Name)
	assert.Equal(t, streamsift.VerdictExcludedByPattern, got[0].Verdict)
}

func TestWatcher_WatchTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streams.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := streamsift.NewWatcher(newTestEngine(t), path)
	defer w.Close()

	_, _, err := w.Watch(ctx)
	require.NoError(t, err)

	_, _, err = w.Watch(ctx)
	assert.ErrorIs(t, err, streamsift.ErrAlreadyWatching)
}

func TestWatcher_CloseThenWatch(t *testing.T) {
	w := streamsift.NewWatcher(newTestEngine(t), "unused")
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Close is idempotent")

	_, _, err := w.Watch(context.Background())
	assert.ErrorIs(t, err, streamsift.ErrWatcherClosed)
}

func TestWatcher_ContextCancelClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streams.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	w := streamsift.NewWatcher(newTestEngine(t), path)
	defer w.Close()

	results, _, err := w.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-results:
		assert.False(t, ok, "result channel should close on cancellation")
	case <-time.After(10 * time.Second):
		t.Fatal("result channel did not close after cancellation")
	}
}
