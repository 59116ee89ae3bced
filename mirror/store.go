// Package mirror maintains a local, strongly-typed snapshot of a bridge's
// resource graph. A Client keeps the snapshot synchronized over two
// independent paths, periodic full-snapshot polling and the incremental
// server-pushed event stream, while serving concurrent reads and dispatching
// write commands back to the bridge.
package mirror

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nvasilev/huemirror/clip"
)

// kindStore is one kind's slice of the cache. Implementations hold the typed
// entries for exactly one resource kind, keyed by id.
type kindStore interface {
	upsert(res clip.Resource) error
	merge(id string, patch map[string]any) (bool, error)
	remove(id string) bool
	count() int
}

// entries is the typed store backing one resource kind. Mutations always
// replace whole values, never edit them in place, so copies handed out by
// reads can never change underneath their caller.
type entries[T any] struct {
	byID map[string]T
}

func newEntries[T any]() *entries[T] {
	return &entries[T]{byID: make(map[string]T)}
}

func (s *entries[T]) upsert(res clip.Resource) error {
	var v T
	if err := json.Unmarshal(res.Data, &v); err != nil {
		return err
	}
	s.byID[res.ID] = v
	return nil
}

// merge applies a partial patch onto the stored entry by round-tripping it
// through its JSON form. Reports false when there is no base entry to merge
// onto.
func (s *entries[T]) merge(id string, patch map[string]any) (bool, error) {
	cur, ok := s.byID[id]
	if !ok {
		return false, nil
	}

	raw, err := json.Marshal(cur)
	if err != nil {
		return false, err
	}
	var base map[string]any
	if err := json.Unmarshal(raw, &base); err != nil {
		return false, err
	}

	merged, err := json.Marshal(clip.MergePatch(base, patch))
	if err != nil {
		return false, err
	}
	var next T
	if err := json.Unmarshal(merged, &next); err != nil {
		return false, err
	}
	s.byID[id] = next
	return true, nil
}

func (s *entries[T]) remove(id string) bool {
	_, ok := s.byID[id]
	delete(s.byID, id)
	return ok
}

func (s *entries[T]) count() int { return len(s.byID) }

// cache is the shared store behind a Client: one typed map per resource kind
// plus the singleton slot for the bridge's own entry, all guarded by a
// single mutex. Background synchronizers and foreground readers only ever
// touch it through that lock.
type cache struct {
	log *slog.Logger

	mu     sync.Mutex
	bridge *clip.BridgeData
	kinds  map[clip.ResourceType]kindStore
}

func newCache(log *slog.Logger) *cache {
	return &cache{
		log: log,
		kinds: map[clip.ResourceType]kindStore{
			clip.RTypeLight:                      newEntries[clip.Light](),
			clip.RTypeScene:                      newEntries[clip.Scene](),
			clip.RTypeSmartScene:                 newEntries[clip.SmartScene](),
			clip.RTypeRoom:                       newEntries[clip.Room](),
			clip.RTypeZone:                       newEntries[clip.Zone](),
			clip.RTypeGroupedLight:               newEntries[clip.GroupedLight](),
			clip.RTypeBridgeHome:                 newEntries[clip.BridgeHome](),
			clip.RTypeDevice:                     newEntries[clip.Device](),
			clip.RTypeDevicePower:                newEntries[clip.DevicePower](),
			clip.RTypeDeviceSoftwareUpdate:       newEntries[clip.DeviceSoftwareUpdate](),
			clip.RTypeButton:                     newEntries[clip.Button](),
			clip.RTypeRelativeRotary:             newEntries[clip.RelativeRotary](),
			clip.RTypeMotion:                     newEntries[clip.Motion](),
			clip.RTypeCameraMotion:               newEntries[clip.CameraMotion](),
			clip.RTypeContact:                    newEntries[clip.Contact](),
			clip.RTypeTamper:                     newEntries[clip.Tamper](),
			clip.RTypeTemperature:                newEntries[clip.Temperature](),
			clip.RTypeLightLevel:                 newEntries[clip.LightLevel](),
			clip.RTypeZigbeeConnectivity:         newEntries[clip.ZigbeeConnectivity](),
			clip.RTypeZgpConnectivity:            newEntries[clip.ZGPConnectivity](),
			clip.RTypeZigbeeDeviceDiscovery:      newEntries[clip.ZigbeeDeviceDiscovery](),
			clip.RTypeHomekit:                    newEntries[clip.HomeKit](),
			clip.RTypeMatter:                     newEntries[clip.Matter](),
			clip.RTypeMatterFabric:               newEntries[clip.MatterFabric](),
			clip.RTypeGeolocation:                newEntries[clip.Geolocation](),
			clip.RTypeGeofenceClient:             newEntries[clip.GeofenceClient](),
			clip.RTypeBehaviorScript:             newEntries[clip.BehaviorScript](),
			clip.RTypeBehaviorInstance:           newEntries[clip.BehaviorInstance](),
			clip.RTypeEntertainment:              newEntries[clip.Entertainment](),
			clip.RTypeEntertainmentConfiguration: newEntries[clip.EntertainmentConfiguration](),
		},
	}
}

// insertAll ingests a full snapshot (or the payloads of one Add event) with
// total-replace semantics per entry. Resources already present but absent
// from the slice are left alone: snapshots add and replace, only delete
// events evict.
func (c *cache) insertAll(resources []clip.Resource) []clip.ResourceRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(resources)
}

func (c *cache) insertLocked(resources []clip.Resource) []clip.ResourceRef {
	var changed []clip.ResourceRef
	for _, res := range resources {
		if res.Type == clip.RTypeBridge {
			var data clip.BridgeData
			if err := json.Unmarshal(res.Data, &data); err != nil {
				c.log.Warn("dropping malformed bridge resource", slog.Any("error", err))
				continue
			}
			c.bridge = &data
			changed = append(changed, res.Ref())
			continue
		}

		store, ok := c.kinds[res.Type]
		if !ok {
			c.log.Debug("skipping unknown resource type",
				slog.String("type", string(res.Type)),
				slog.String("id", res.ID),
			)
			continue
		}
		if err := store.upsert(res); err != nil {
			c.log.Warn("dropping malformed resource",
				slog.String("type", string(res.Type)),
				slog.String("id", res.ID),
				slog.Any("error", err),
			)
			continue
		}
		changed = append(changed, res.Ref())
	}
	return changed
}

// mergeLocked applies one Update payload. The patch is dropped when no base
// entry exists: there is nothing to merge onto, and the next snapshot will
// bring the full resource anyway.
func (c *cache) mergeLocked(res clip.Resource) (bool, error) {
	var patch map[string]any
	if err := json.Unmarshal(res.Data, &patch); err != nil {
		return false, err
	}

	if res.Type == clip.RTypeBridge {
		if c.bridge == nil {
			return false, nil
		}
		raw, err := json.Marshal(c.bridge)
		if err != nil {
			return false, err
		}
		var base map[string]any
		if err := json.Unmarshal(raw, &base); err != nil {
			return false, err
		}
		merged, err := json.Marshal(clip.MergePatch(base, patch))
		if err != nil {
			return false, err
		}
		var next clip.BridgeData
		if err := json.Unmarshal(merged, &next); err != nil {
			return false, err
		}
		c.bridge = &next
		return true, nil
	}

	store, ok := c.kinds[res.Type]
	if !ok {
		c.log.Debug("skipping update for unknown resource type",
			slog.String("type", string(res.Type)),
			slog.String("id", res.ID),
		)
		return false, nil
	}
	return store.merge(res.ID, patch)
}

// removeLocked deletes entries by their declared kind only: an id colliding
// across kinds is untouched in every other kind's map. Deleting the bridge
// clears the singleton slot; kinds with no store at all are reported as
// unsupported.
func (c *cache) removeLocked(refs []clip.ResourceRef) []clip.ResourceRef {
	var removed []clip.ResourceRef
	for _, ref := range refs {
		if ref.Type == clip.RTypeBridge {
			if c.bridge != nil {
				c.bridge = nil
				removed = append(removed, ref)
			}
			continue
		}

		store, ok := c.kinds[ref.Type]
		if !ok {
			c.log.Warn("delete for unsupported resource type",
				slog.String("type", string(ref.Type)),
				slog.String("id", ref.ID),
			)
			continue
		}
		if store.remove(ref.ID) {
			removed = append(removed, ref)
		}
	}
	return removed
}

func (c *cache) removeRefs(refs []clip.ResourceRef) []clip.ResourceRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(refs)
}

func (c *cache) countKind(rt clip.ResourceType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	store, ok := c.kinds[rt]
	if !ok {
		return 0
	}
	return store.count()
}

func (c *cache) bridgeData() (clip.BridgeData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bridge == nil {
		return clip.BridgeData{}, false
	}
	return *c.bridge, true
}

// storeOf resolves the typed store registered for a kind. A mismatch between
// the registry row's type parameter and the accessor asking for it is a
// programming error, so it panics instead of failing quietly.
func storeOf[T any](c *cache, rt clip.ResourceType) *entries[T] {
	store, ok := c.kinds[rt]
	if !ok {
		return nil
	}
	typed, ok := store.(*entries[T])
	if !ok {
		panic(fmt.Sprintf("mirror: store for %q holds a different type", rt))
	}
	return typed
}

// getOne returns an owned copy of the (id, kind) entry, if present.
func getOne[T any](c *cache, rt clip.ResourceType, id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	store := storeOf[T](c, rt)
	if store == nil {
		var zero T
		return zero, false
	}
	v, ok := store.byID[id]
	return v, ok
}

// listAll returns owned copies of every entry of a kind, in no particular
// order.
func listAll[T any](c *cache, rt clip.ResourceType) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	store := storeOf[T](c, rt)
	if store == nil {
		return nil
	}
	out := make([]T, 0, len(store.byID))
	for _, v := range store.byID {
		out = append(out, v)
	}
	return out
}
