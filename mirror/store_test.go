package mirror

import (
	"testing"

	"github.com/nvasilev/huemirror/clip"
)

func TestInsertAllIsIdempotent(t *testing.T) {
	c := newCache(testLogger())
	snapshot := []clip.Resource{
		lightResource(t, "l-1", "Desk", true, 50),
		lightResource(t, "l-2", "Shelf", false, 100),
		sceneResource(t, "s-1", "Dusk"),
	}

	c.insertAll(snapshot)
	c.insertAll(snapshot)

	if got := c.countKind(clip.RTypeLight); got != 2 {
		t.Errorf("lights = %d, want 2", got)
	}
	if got := c.countKind(clip.RTypeScene); got != 1 {
		t.Errorf("scenes = %d, want 1", got)
	}
}

func TestInsertReplacesWholesale(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{lightResource(t, "l-1", "Desk", true, 50)})
	c.insertAll([]clip.Resource{lightResource(t, "l-1", "Desk moved", false, 10)})

	l, ok := getOne[clip.Light](c, clip.RTypeLight, "l-1")
	if !ok {
		t.Fatal("light missing")
	}
	if l.Name() != "Desk moved" || l.IsOn() {
		t.Errorf("light = %+v", l)
	}
}

func TestUpdateMergeKeepsUnspecifiedFields(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{lightResource(t, "l-1", "Desk", true, 50)})

	changed := c.applyEvents([]clip.Event{
		updateEvent(t, clip.RTypeLight, "l-1", `{"dimming":{"brightness":80}}`),
	})

	if len(changed) != 1 {
		t.Fatalf("changed = %+v", changed)
	}
	l, _ := getOne[clip.Light](c, clip.RTypeLight, "l-1")
	if l.Dimming == nil || l.Dimming.Brightness != 80 {
		t.Errorf("brightness not merged: %+v", l.Dimming)
	}
	if l.Dimming.MinDimLevel != 2 {
		t.Errorf("min_dim_level lost in merge: %+v", l.Dimming)
	}
	if !l.IsOn() {
		t.Error("on state lost in merge")
	}
	if l.Name() != "Desk" {
		t.Errorf("name lost in merge: %q", l.Name())
	}
}

func TestUpdateWithoutBaseIsDropped(t *testing.T) {
	c := newCache(testLogger())

	changed := c.applyEvents([]clip.Event{
		updateEvent(t, clip.RTypeLight, "ghost", `{"on":{"on":true}}`),
	})

	if len(changed) != 0 {
		t.Errorf("changed = %+v, want none", changed)
	}
	if got := c.countKind(clip.RTypeLight); got != 0 {
		t.Errorf("lights = %d, partial update was inserted", got)
	}
}

func TestDeleteRemovesOnlyDeclaredKind(t *testing.T) {
	c := newCache(testLogger())
	// Same id in two kinds; only the declared kind may be evicted.
	c.insertAll([]clip.Resource{
		lightResource(t, "shared-id", "Desk", true, 50),
		resourceJSON(t, clip.RTypeScene, "shared-id",
			`{"type":"scene","id":"shared-id","metadata":{"name":"Dusk"},"group":{"rid":"r-1","rtype":"room"}}`),
		lightResource(t, "l-2", "Shelf", false, 100),
	})

	changed := c.applyEvents([]clip.Event{
		deleteEvent(clip.ResourceRef{ID: "shared-id", Type: clip.RTypeScene}),
	})

	if len(changed) != 1 {
		t.Fatalf("changed = %+v", changed)
	}
	if _, ok := getOne[clip.Scene](c, clip.RTypeScene, "shared-id"); ok {
		t.Error("scene survived its delete")
	}
	if _, ok := getOne[clip.Light](c, clip.RTypeLight, "shared-id"); !ok {
		t.Error("light with colliding id was evicted")
	}
	if got := c.countKind(clip.RTypeLight); got != 2 {
		t.Errorf("lights = %d, want 2", got)
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{lightResource(t, "l-1", "Desk", true, 50)})

	changed := c.applyEvents([]clip.Event{
		deleteEvent(clip.ResourceRef{ID: "ghost", Type: clip.RTypeLight}),
	})

	if len(changed) != 0 {
		t.Errorf("changed = %+v, want none", changed)
	}
	if got := c.countKind(clip.RTypeLight); got != 1 {
		t.Errorf("lights = %d, want 1", got)
	}
}

func TestBridgeSingleton(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{bridgeResource(t, "b-1", "ecb5fafffe000000")})

	b, ok := c.bridgeData()
	if !ok {
		t.Fatal("bridge missing after insert")
	}
	if b.BridgeID != "ecb5fafffe000000" {
		t.Errorf("bridge = %+v", b)
	}

	// A second bridge entry replaces the slot, it does not accumulate.
	c.insertAll([]clip.Resource{bridgeResource(t, "b-2", "ecb5fafffe111111")})
	b, _ = c.bridgeData()
	if b.ID != "b-2" {
		t.Errorf("bridge = %+v, want b-2", b)
	}

	c.applyEvents([]clip.Event{
		deleteEvent(clip.ResourceRef{ID: "b-2", Type: clip.RTypeBridge}),
	})
	if _, ok := c.bridgeData(); ok {
		t.Error("bridge survived its delete")
	}
}

func TestBridgeUpdateMerges(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{bridgeResource(t, "b-1", "ecb5fafffe000000")})

	c.applyEvents([]clip.Event{
		updateEvent(t, clip.RTypeBridge, "b-1", `{"time_zone":{"time_zone":"Europe/Sofia"}}`),
	})

	b, ok := c.bridgeData()
	if !ok {
		t.Fatal("bridge missing")
	}
	if b.TimeZone == nil || b.TimeZone.TimeZone != "Europe/Sofia" {
		t.Errorf("time zone not merged: %+v", b.TimeZone)
	}
	if b.BridgeID != "ecb5fafffe000000" {
		t.Errorf("bridge id lost in merge: %+v", b)
	}
}

func TestUnknownKindsAreIgnored(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{
		resourceJSON(t, clip.ResourceType("quantum_lamp"), "q-1",
			`{"type":"quantum_lamp","id":"q-1","weird":{"field":1}}`),
		lightResource(t, "l-1", "Desk", true, 50),
	})

	if got := c.countKind(clip.RTypeLight); got != 1 {
		t.Errorf("lights = %d, want 1", got)
	}
	if got := c.countKind(clip.ResourceType("quantum_lamp")); got != 0 {
		t.Errorf("unknown kind was stored, count = %d", got)
	}

	// Updates and deletes for unknown kinds are ignored too.
	changed := c.applyEvents([]clip.Event{
		updateEvent(t, clip.ResourceType("quantum_lamp"), "q-1", `{"weird":{"field":2}}`),
		deleteEvent(clip.ResourceRef{ID: "q-1", Type: clip.ResourceType("quantum_lamp")}),
	})
	if len(changed) != 0 {
		t.Errorf("changed = %+v, want none", changed)
	}
}

func TestErrorAndUnknownEventsAreIgnored(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{lightResource(t, "l-1", "Desk", true, 50)})

	changed := c.applyEvents([]clip.Event{
		{ID: "e-1", Type: clip.EventError},
		{ID: "e-2", Type: clip.EventType("telemetry")},
	})

	if len(changed) != 0 {
		t.Errorf("changed = %+v, want none", changed)
	}
	if got := c.countKind(clip.RTypeLight); got != 1 {
		t.Errorf("lights = %d, want 1", got)
	}
}

func TestAddEventInsertsResources(t *testing.T) {
	c := newCache(testLogger())

	changed := c.applyEvents([]clip.Event{
		addEvent(lightResource(t, "l-1", "Desk", true, 50)),
	})

	if len(changed) != 1 {
		t.Fatalf("changed = %+v", changed)
	}
	if _, ok := getOne[clip.Light](c, clip.RTypeLight, "l-1"); !ok {
		t.Error("added light missing")
	}
}

func TestMalformedPayloadDoesNotPoisonBatch(t *testing.T) {
	c := newCache(testLogger())
	c.insertAll([]clip.Resource{
		resourceJSON(t, clip.RTypeLight, "bad", `{"type":"light","id":"bad","on":"not-an-object"}`),
		lightResource(t, "l-1", "Desk", true, 50),
	})

	if _, ok := getOne[clip.Light](c, clip.RTypeLight, "l-1"); !ok {
		t.Error("valid light was lost to a malformed sibling")
	}
	if _, ok := getOne[clip.Light](c, clip.RTypeLight, "bad"); ok {
		t.Error("malformed light was stored")
	}
}
