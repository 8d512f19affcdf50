package streamsift

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/nxadm/tail"
)

// Watcher errors.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("watcher is already watching")
)

// watcherErrBuffer is the buffer size for the error channel. A small
// buffer prevents error loss during brief moments when the consumer is
// busy, while keeping memory usage minimal.
const watcherErrBuffer = 16

// WatchOption configures a Watcher.
type WatchOption func(*watchConfig)

type watchConfig struct {
	fromStart bool
	logger    *slog.Logger
}

// WithWatchFromStart classifies the file's existing lines before
// following new ones. Default is to start at the end (tail -f behavior).
func WithWatchFromStart() WatchOption {
	return func(c *watchConfig) {
		c.fromStart = true
	}
}

// WithWatchLogger sets a custom logger for watcher debug output.
// If logger is nil, logging is disabled (default behavior).
func WithWatchLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Watcher follows a stream-list file (one stream name per line) and
// emits a Classification for every new non-empty line. The file is
// re-opened across rotation, so long-running exports keep flowing.
type Watcher struct {
	engine *Engine
	path   string
	cfg    watchConfig

	mu       sync.Mutex
	closed   bool
	watching bool
	cancel   context.CancelFunc
	doneCh   chan struct{}
}

// NewWatcher creates a Watcher classifying lines of the file at path
// with the given engine.
func NewWatcher(engine *Engine, path string, opts ...WatchOption) *Watcher {
	cfg := watchConfig{logger: discardLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Watcher{engine: engine, path: path, cfg: cfg}
}

// Watch starts following the file and returns channels. Both channels
// close when ctx is cancelled, Close is called, or the tail fails
// fatally. Watch can only be called once per Watcher instance.
//
// Returns ErrWatcherClosed if the watcher has been closed.
// Returns ErrAlreadyWatching if Watch() has already been called.
func (w *Watcher) Watch(ctx context.Context) (<-chan Classification, <-chan error, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, nil, ErrWatcherClosed
	}
	if w.watching {
		return nil, nil, ErrAlreadyWatching
	}
	w.watching = true

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.doneCh = make(chan struct{})

	resultCh := make(chan Classification)
	errCh := make(chan error, watcherErrBuffer)

	go w.run(ctx, resultCh, errCh)

	return resultCh, errCh, nil
}

// Close stops the watcher and releases resources. Safe to call multiple
// times. Blocks until the watch goroutine has exited.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.cancel != nil {
		w.cancel()
	}
	doneCh := w.doneCh
	w.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, resultCh chan<- Classification, errCh chan<- error) {
	defer close(w.doneCh)
	defer close(resultCh)
	defer close(errCh)

	tc := tail.Config{
		Follow: true,
		ReOpen: true,
		Logger: tail.DiscardingLogger,
	}
	if !w.cfg.fromStart {
		tc.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(w.path, tc)
	if err != nil {
		w.sendErr(errCh, err)
		return
	}
	defer func() {
		if err := t.Stop(); err != nil {
			w.cfg.logger.Debug("tail stop failed", "error", err)
		}
		t.Cleanup()
	}()

	w.cfg.logger.Debug("watching stream list", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				w.sendErr(errCh, line.Err)
				continue
			}
			name := strings.TrimRight(line.Text, "\r")
			if strings.TrimSpace(name) == "" {
				continue
			}
			select {
			case resultCh <- w.engine.Classify(name):
			case <-ctx.Done():
				return
			}
		}
	}
}

// sendErr delivers an error without blocking; the buffer is small, so a
// stalled consumer drops errors rather than wedging the watcher.
func (w *Watcher) sendErr(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
		w.cfg.logger.Debug("error channel full, dropping error", "error", err)
	}
}
