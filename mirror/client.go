package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nvasilev/huemirror/clip"
)

// Client is a local mirror of one bridge's resource graph. Reads are served
// from the cache without touching the network; writes go straight to the
// bridge, and their effect reaches the cache only once a synchronizer
// reports it back.
type Client struct {
	log   *slog.Logger
	tr    Transport
	cache *cache

	mu     sync.Mutex
	poll   *task
	listen *task
}

// New returns a Client mirroring the bridge behind tr. The cache starts
// empty; call Refresh or start a synchronizer to populate it.
func New(log *slog.Logger, tr Transport) *Client {
	return &Client{
		log:   log,
		tr:    tr,
		cache: newCache(log),
	}
}

// Refresh fetches the full resource snapshot and folds it into the cache.
// Entries missing from the snapshot are kept, not evicted.
func (c *Client) Refresh(ctx context.Context) error {
	resources, err := c.tr.Resources(ctx)
	if err != nil {
		return fmt.Errorf("fetch resource snapshot: %w", err)
	}
	changed := c.cache.insertAll(resources)
	c.log.Debug("refreshed resource snapshot",
		slog.Int("fetched", len(resources)),
		slog.Int("stored", len(changed)),
	)
	return nil
}

// BridgeData returns the bridge's own entry, once a sync has brought it in.
func (c *Client) BridgeData() (clip.BridgeData, bool) {
	return c.cache.bridgeData()
}

// Send composes the given commands into a single body, PUTs it to the target
// resource, and returns the refs the bridge acknowledges as affected. Later
// commands win on overlapping fields. The cache is not touched: the new state
// arrives through the event stream or the next poll, so a read immediately
// after Send may still see the old state.
func (c *Client) Send(ctx context.Context, ref clip.ResourceRef, commands ...clip.Command) ([]clip.ResourceRef, error) {
	body := clip.MergeCommands(commands...)
	if len(body) == 0 {
		return nil, nil
	}
	refs, err := c.tr.Put(ctx, ref.Type, ref.ID, body)
	if err != nil {
		return nil, fmt.Errorf("send to %s %s: %w", ref.Type, ref.ID, err)
	}
	return refs, nil
}

// create POSTs a new resource, reads it back, and inserts it into the cache
// so the caller sees it immediately.
func (c *Client) create(ctx context.Context, rt clip.ResourceType, body map[string]any) (clip.ResourceRef, error) {
	ref, err := c.tr.Post(ctx, rt, body)
	if err != nil {
		return clip.ResourceRef{}, fmt.Errorf("create %s: %w", rt, err)
	}
	res, err := c.tr.ResourceByRef(ctx, ref)
	if err != nil {
		return ref, fmt.Errorf("read back created %s %s: %w", ref.Type, ref.ID, err)
	}
	c.cache.insertAll([]clip.Resource{res})
	return ref, nil
}

// remove DELETEs a resource on the bridge and evicts it from the cache,
// along with any entries the bridge reports deleted with it.
func (c *Client) remove(ctx context.Context, ref clip.ResourceRef) error {
	refs, err := c.tr.Delete(ctx, ref.Type, ref.ID)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", ref.Type, ref.ID, err)
	}
	c.cache.removeRefs(append(refs, ref))
	return nil
}

// CreateScene stores a new scene on the bridge and returns its ref.
func (c *Client) CreateScene(ctx context.Context, b clip.SceneBuilder) (clip.ResourceRef, error) {
	return c.create(ctx, clip.RTypeScene, b.Body())
}

// CreateRoom creates a new room grouping the builder's children.
func (c *Client) CreateRoom(ctx context.Context, b clip.ZoneBuilder) (clip.ResourceRef, error) {
	return c.create(ctx, clip.RTypeRoom, b.Body())
}

// CreateZone creates a new zone grouping the builder's children.
func (c *Client) CreateZone(ctx context.Context, b clip.ZoneBuilder) (clip.ResourceRef, error) {
	return c.create(ctx, clip.RTypeZone, b.Body())
}

func (c *Client) DeleteScene(ctx context.Context, id string) error {
	return c.remove(ctx, clip.ResourceRef{ID: id, Type: clip.RTypeScene})
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.remove(ctx, clip.ResourceRef{ID: id, Type: clip.RTypeRoom})
}

func (c *Client) DeleteZone(ctx context.Context, id string) error {
	return c.remove(ctx, clip.ResourceRef{ID: id, Type: clip.RTypeZone})
}

// DeleteDevice unpairs a device from the bridge.
func (c *Client) DeleteDevice(ctx context.Context, id string) error {
	return c.remove(ctx, clip.ResourceRef{ID: id, Type: clip.RTypeDevice})
}
