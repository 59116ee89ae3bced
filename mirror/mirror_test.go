package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/nvasilev/huemirror/clip"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTransport serves canned snapshots and records writes. Events blocks
// until the test pushes batches through Emit or the context ends.
type fakeTransport struct {
	mu        sync.Mutex
	snapshot  []clip.Resource
	fetchErr  error
	fetches   int
	puts      []putCall
	deletes   []clip.ResourceRef
	created   map[string]clip.Resource
	eventsCh  chan []clip.Event
	streamErr error
}

type putCall struct {
	Ref  clip.ResourceRef
	Body any
}

func newFakeTransport(snapshot ...clip.Resource) *fakeTransport {
	return &fakeTransport{
		snapshot: snapshot,
		created:  map[string]clip.Resource{},
		eventsCh: make(chan []clip.Event),
	}
}

func (f *fakeTransport) setSnapshot(snapshot ...clip.Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = snapshot
}

func (f *fakeTransport) setFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchErr = err
}

func (f *fakeTransport) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeTransport) putCalls() []putCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]putCall(nil), f.puts...)
}

func (f *fakeTransport) Resources(ctx context.Context) ([]clip.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]clip.Resource(nil), f.snapshot...), nil
}

func (f *fakeTransport) ResourceByRef(ctx context.Context, ref clip.ResourceRef) (clip.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res, ok := f.created[ref.ID]; ok {
		return res, nil
	}
	for _, res := range f.snapshot {
		if res.ID == ref.ID && res.Type == ref.Type {
			return res, nil
		}
	}
	return clip.Resource{}, clip.ErrNotFound
}

func (f *fakeTransport) Put(ctx context.Context, rt clip.ResourceType, id string, body any) ([]clip.ResourceRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref := clip.ResourceRef{ID: id, Type: rt}
	f.puts = append(f.puts, putCall{Ref: ref, Body: body})
	return []clip.ResourceRef{ref}, nil
}

func (f *fakeTransport) Post(ctx context.Context, rt clip.ResourceType, body any) (clip.ResourceRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.NewString()
	raw, err := json.Marshal(body)
	if err != nil {
		return clip.ResourceRef{}, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return clip.ResourceRef{}, err
	}
	fields["id"] = id
	fields["type"] = string(rt)
	full, err := json.Marshal(fields)
	if err != nil {
		return clip.ResourceRef{}, err
	}
	f.created[id] = clip.Resource{Type: rt, ID: id, Data: full}
	return clip.ResourceRef{ID: id, Type: rt}, nil
}

func (f *fakeTransport) Delete(ctx context.Context, rt clip.ResourceType, id string) ([]clip.ResourceRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, clip.ResourceRef{ID: id, Type: rt})
	return nil, nil
}

func (f *fakeTransport) Events(ctx context.Context, out chan<- []clip.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-f.eventsCh:
			if !ok {
				return f.streamErr
			}
			select {
			case out <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Emit pushes one event batch through the stream, blocking until the
// listener has picked it up.
func (f *fakeTransport) Emit(batch []clip.Event) {
	f.eventsCh <- batch
}

func lightResource(t *testing.T, id, name string, on bool, brightness float64) clip.Resource {
	t.Helper()
	return resourceJSON(t, clip.RTypeLight, id, fmt.Sprintf(
		`{"type":"light","id":%q,"metadata":{"name":%q},"on":{"on":%t},"dimming":{"brightness":%g,"min_dim_level":2}}`,
		id, name, on, brightness,
	))
}

func sceneResource(t *testing.T, id, name string) clip.Resource {
	t.Helper()
	return resourceJSON(t, clip.RTypeScene, id, fmt.Sprintf(
		`{"type":"scene","id":%q,"metadata":{"name":%q},"group":{"rid":"r-1","rtype":"room"}}`,
		id, name,
	))
}

func bridgeResource(t *testing.T, id, bridgeID string) clip.Resource {
	t.Helper()
	return resourceJSON(t, clip.RTypeBridge, id, fmt.Sprintf(
		`{"type":"bridge","id":%q,"bridge_id":%q}`, id, bridgeID,
	))
}

func resourceJSON(t *testing.T, rt clip.ResourceType, id, raw string) clip.Resource {
	t.Helper()
	var res clip.Resource
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("bad fixture for %s %s: %v", rt, id, err)
	}
	if res.Type != rt || res.ID != id {
		t.Fatalf("fixture mismatch: got %s %s", res.Type, res.ID)
	}
	return res
}

func updateEvent(t *testing.T, rt clip.ResourceType, id, patch string) clip.Event {
	t.Helper()
	var fields map[string]any
	if err := json.Unmarshal([]byte(patch), &fields); err != nil {
		t.Fatalf("bad update fixture: %v", err)
	}
	fields["type"] = string(rt)
	fields["id"] = id
	full, err := json.Marshal(fields)
	if err != nil {
		t.Fatal(err)
	}
	var res clip.Resource
	if err := json.Unmarshal(full, &res); err != nil {
		t.Fatal(err)
	}
	return clip.Event{ID: uuid.NewString(), Type: clip.EventUpdate, Data: []clip.Resource{res}}
}

func deleteEvent(refs ...clip.ResourceRef) clip.Event {
	data := make([]clip.Resource, len(refs))
	for i, ref := range refs {
		data[i] = clip.Resource{Type: ref.Type, ID: ref.ID}
	}
	return clip.Event{ID: uuid.NewString(), Type: clip.EventDelete, Data: data}
}

func addEvent(resources ...clip.Resource) clip.Event {
	return clip.Event{ID: uuid.NewString(), Type: clip.EventAdd, Data: resources}
}
