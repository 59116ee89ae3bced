package mirror

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nvasilev/huemirror/clip"
)

// Transport is the bridge-facing surface a Client synchronizes through.
// *clip.Client implements it; tests substitute their own.
type Transport interface {
	Resources(ctx context.Context) ([]clip.Resource, error)
	ResourceByRef(ctx context.Context, ref clip.ResourceRef) (clip.Resource, error)
	Put(ctx context.Context, rt clip.ResourceType, id string, body any) ([]clip.ResourceRef, error)
	Post(ctx context.Context, rt clip.ResourceType, body any) (clip.ResourceRef, error)
	Delete(ctx context.Context, rt clip.ResourceType, id string) ([]clip.ResourceRef, error)
	Events(ctx context.Context, out chan<- []clip.Event) error
}

var _ Transport = (*clip.Client)(nil)

// task is one running background synchronizer. Cancelling the context stops
// it at the next loop boundary; done closes once the goroutines have
// drained.
type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (t *task) stop() {
	t.cancel()
	<-t.done
}

// StartPolling refreshes the whole cache now and then again on every tick of
// interval. Ticks that land while a refresh is still in flight collapse into
// one. A second call replaces the running poller. Entries that vanish from
// the bridge between polls are not evicted; only delete events do that.
func (c *Client) StartPolling(ctx context.Context, interval time.Duration) error {
	if err := c.Refresh(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poll != nil {
		c.poll.stop()
	}

	tctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t := &task{cancel: cancel, done: make(chan struct{})}
	c.poll = t
	go c.pollLoop(tctx, interval, t.done)
	return nil
}

func (c *Client) pollLoop(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// The eager refresh in StartPolling already covered the first interval,
	// so the first tick is skipped and the first periodic refresh lands two
	// intervals in.
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if first {
				first = false
				continue
			}
			if err := c.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				c.log.Error("periodic refresh failed", slog.Any("error", err))
			}
		}
	}
}

// StopPolling stops the periodic poller, blocking until it has exited. The
// cache keeps its last contents.
func (c *Client) StopPolling() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poll != nil {
		c.poll.stop()
		c.poll = nil
	}
}

// StartListening refreshes the whole cache now and then follows the bridge's
// event stream, folding each batch into the cache as it arrives. After a
// batch lands, onChange (if non-nil) is called with the refs of the entries
// it changed. A second call replaces the running listener.
func (c *Client) StartListening(ctx context.Context, onChange func([]clip.ResourceRef)) error {
	if err := c.Refresh(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listen != nil {
		c.listen.stop()
	}

	tctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t := &task{cancel: cancel, done: make(chan struct{})}
	c.listen = t

	events := make(chan []clip.Event, 8)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(events)
		if err := c.tr.Events(tctx, events); err != nil && tctx.Err() == nil {
			c.log.Error("event stream terminated", slog.Any("error", err))
		}
	}()
	go func() {
		defer wg.Done()
		for batch := range events {
			changed := c.cache.applyEvents(batch)
			if onChange != nil && len(changed) > 0 {
				onChange(changed)
			}
		}
	}()
	go func() {
		wg.Wait()
		close(t.done)
	}()
	return nil
}

// StopListening stops the event-stream listener, blocking until both the
// stream and the apply goroutine have exited.
func (c *Client) StopListening() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listen != nil {
		c.listen.stop()
		c.listen = nil
	}
}

// Close stops any running synchronizers.
func (c *Client) Close() {
	c.StopPolling()
	c.StopListening()
}
