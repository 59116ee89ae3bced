package clip

import (
	"encoding/json"
	"testing"
)

func TestEventBatchDecode(t *testing.T) {
	raw := `[
		{
			"id": "e-1",
			"creationtime": "2024-03-01T10:00:00Z",
			"type": "update",
			"data": [
				{"type": "light", "id": "l-1", "on": {"on": false}},
				{"type": "light", "id": "l-2", "dimming": {"brightness": 25}}
			]
		},
		{
			"id": "e-2",
			"creationtime": "2024-03-01T10:00:01Z",
			"type": "delete",
			"data": [{"type": "scene", "id": "s-1"}]
		}
	]`

	var events []Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		t.Fatal(err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != EventUpdate {
		t.Errorf("events[0].Type = %q, want update", events[0].Type)
	}
	if len(events[0].Data) != 2 {
		t.Errorf("events[0] has %d payloads, want 2", len(events[0].Data))
	}
	if events[1].Type != EventDelete {
		t.Errorf("events[1].Type = %q, want delete", events[1].Type)
	}
	if ref := events[1].Data[0].Ref(); ref.ID != "s-1" || ref.Type != RTypeScene {
		t.Errorf("delete ref = %+v", ref)
	}
	if events[0].CreationTime.IsZero() {
		t.Error("creationtime was not parsed")
	}
}

func TestEventUnknownTypeDecodes(t *testing.T) {
	raw := `[{"id": "e-3", "creationtime": "2024-03-01T10:00:02Z", "type": "telemetry", "data": []}]`

	var events []Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		t.Fatal(err)
	}
	if events[0].Type != EventType("telemetry") {
		t.Errorf("type = %q", events[0].Type)
	}
}
