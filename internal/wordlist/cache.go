package wordlist

import (
	"context"
	"sync"
)

// Loader produces a wordlist, honoring ctx for cancellation.
type Loader func(ctx context.Context) ([]string, error)

// Cache hands out a lazily loaded wordlist. The first Words call runs the
// loader; concurrent callers share that single load instead of racing their
// own. A successful result is kept for the lifetime of the cache, a failed
// load is retried by the next caller.
type Cache struct {
	load Loader

	mu      sync.Mutex
	words   []string
	lastErr error
	pending chan struct{} // closed when the in-flight load finishes
	cancel  context.CancelFunc
}

// NewCache wraps load in a load-once cache. Nothing is loaded until Words
// or Prime is called.
func NewCache(load Loader) *Cache {
	return &Cache{load: load}
}

// Words returns the cached list, loading it first if needed. ctx bounds only
// this caller's wait: the load itself runs on a detached context, so a caller
// that gives up does not abort the load for everyone else. Callers must not
// modify the returned slice.
func (c *Cache) Words(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	if c.words != nil {
		words := c.words
		c.mu.Unlock()
		return words, nil
	}
	pending := c.pending
	if pending == nil {
		pending = c.startLocked()
	}
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-pending:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.words != nil {
		return c.words, nil
	}
	return nil, c.lastErr
}

// Prime starts loading in the background so the first request doesn't pay
// for it. No-op when a list is already loaded or a load is in flight.
func (c *Cache) Prime() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.words == nil && c.pending == nil {
		c.startLocked()
	}
}

// Cancel aborts an in-flight load. An already loaded list is kept. Waiters
// see the load's cancellation error; the next call after that retries.
func (c *Cache) Cancel() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// startLocked kicks off the loader. The caller must hold mu.
func (c *Cache) startLocked() chan struct{} {
	loadCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.pending = done
	c.cancel = cancel
	go c.run(loadCtx, cancel, done)
	return done
}

func (c *Cache) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer cancel()

	words, err := c.load(ctx)
	if err == nil && len(words) == 0 {
		err = ErrEmpty
	}

	c.mu.Lock()
	if err != nil {
		c.lastErr = err
	} else {
		c.words = words
		c.lastErr = nil
	}
	c.pending = nil
	c.cancel = nil
	c.mu.Unlock()

	close(done)
}
