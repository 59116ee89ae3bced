package mirror

import (
	"log/slog"

	"github.com/nvasilev/huemirror/clip"
)

// applyEvents folds a batch of stream events into the cache and returns the
// refs of every entry the batch actually changed. The lock is taken per
// event, not per batch, so readers interleave between events of a large
// batch but never observe one event's payloads half-applied.
func (c *cache) applyEvents(events []clip.Event) []clip.ResourceRef {
	var changed []clip.ResourceRef
	for _, ev := range events {
		switch ev.Type {
		case clip.EventAdd:
			changed = append(changed, c.insertAll(ev.Data)...)
		case clip.EventUpdate:
			changed = append(changed, c.applyUpdate(ev)...)
		case clip.EventDelete:
			refs := make([]clip.ResourceRef, 0, len(ev.Data))
			for _, res := range ev.Data {
				refs = append(refs, res.Ref())
			}
			changed = append(changed, c.removeRefs(refs)...)
		case clip.EventError:
			c.log.Warn("bridge reported stream error", slog.String("event_id", ev.ID))
		default:
			c.log.Debug("ignoring unknown event type", slog.String("type", string(ev.Type)))
		}
	}
	return changed
}

// applyUpdate treats each payload as a partial patch against the cached
// entry. Patches whose base entry is missing are dropped rather than
// inserted: a partial body would masquerade as a full resource until the
// next snapshot corrected it.
func (c *cache) applyUpdate(ev clip.Event) []clip.ResourceRef {
	c.mu.Lock()
	defer c.mu.Unlock()

	var changed []clip.ResourceRef
	for _, res := range ev.Data {
		if _, known := c.kinds[res.Type]; !known && res.Type != clip.RTypeBridge {
			c.log.Debug("skipping update for unknown resource type",
				slog.String("type", string(res.Type)),
				slog.String("id", res.ID),
			)
			continue
		}
		ok, err := c.mergeLocked(res)
		if err != nil {
			c.log.Warn("dropping malformed update",
				slog.String("type", string(res.Type)),
				slog.String("id", res.ID),
				slog.Any("error", err),
			)
			continue
		}
		if !ok {
			c.log.Warn("dropping update for uncached resource",
				slog.String("type", string(res.Type)),
				slog.String("id", res.ID),
			)
			continue
		}
		changed = append(changed, res.Ref())
	}
	return changed
}
