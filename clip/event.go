package clip

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tmaxmax/go-sse"
)

type EventType string

const (
	EventAdd    EventType = "add"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
	EventError  EventType = "error"
)

// Event is one incremental notification pushed by the bridge. Add events
// carry full resource payloads, update events carry partial patches, delete
// events carry only id and type, and error events carry diagnostics.
type Event struct {
	ID           string     `json:"id"`
	CreationTime time.Time  `json:"creationtime"`
	Type         EventType  `json:"type"`
	Data         []Resource `json:"data"`
}

const (
	streamMinBackoff = 1 * time.Second
	streamMaxBackoff = 2 * time.Minute

	// A connection that survived this long is considered healthy; the next
	// reconnect starts from the minimum backoff again.
	streamHealthyAfter = 1 * time.Minute
)

// Events opens the bridge's server-push connection and delivers event batches
// to out, in arrival order, until ctx is cancelled. Dropped connections are
// reopened with exponential backoff; a malformed message is logged and
// skipped, never fatal.
func (c *Client) Events(ctx context.Context, out chan<- []Event) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = streamMinBackoff
	bo.MaxInterval = streamMaxBackoff
	bo.MaxElapsedTime = 0

	for {
		connectedAt := time.Now()
		err := c.listen(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if time.Since(connectedAt) >= streamHealthyAfter {
			bo.Reset()
		}

		wait := bo.NextBackOff()
		c.log.Warn("event stream disconnected, reconnecting",
			slog.Any("error", err),
			slog.Duration("retry_after", wait),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (c *Client) listen(ctx context.Context, out chan<- []Event) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.absURL("/eventstream/clip/v2"), nil)
	if err != nil {
		return err
	}
	req.Header.Add(appKeyHeader, c.AppKey)
	conn := c.sseClient.NewConnection(req)

	conn.SubscribeToAll(func(ev sse.Event) {
		if len(ev.Data) == 0 {
			return
		}

		var batch []Event
		if err := json.Unmarshal(ev.Data, &batch); err != nil {
			c.log.Error("error while unmarshalling event message", slog.Any("error", err))
			return
		}
		if len(batch) == 0 {
			return
		}

		select {
		case out <- batch:
		case <-ctx.Done():
		}
	})

	c.log.Info("listening for bridge events")
	return conn.Connect()
}
