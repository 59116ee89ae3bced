package clip

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestMergeCommandsComposesFragments(t *testing.T) {
	body := MergeCommands(Brightness(80), On(true))

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"dimming":{"brightness":80},"on":{"on":true}}`
	if string(raw) != want {
		t.Errorf("body = %s, want %s", raw, want)
	}
}

func TestMergeCommandsLaterWins(t *testing.T) {
	body := MergeCommands(Brightness(20), Brightness(80))

	dimming, ok := body["dimming"].(map[string]any)
	if !ok {
		t.Fatalf("body = %v", body)
	}
	if got := dimming["brightness"]; got != 80.0 {
		t.Errorf("brightness = %v, want 80", got)
	}
}

func TestMergeCommandsDisjointFieldsSurvive(t *testing.T) {
	body := MergeCommands(
		On(true),
		Mirek(366),
		TransitionDuration(400*time.Millisecond),
	)

	want := map[string]any{
		"on":                map[string]any{"on": true},
		"color_temperature": map[string]any{"mirek": 366},
		"dynamics":          map[string]any{"duration": 400},
	}
	if !reflect.DeepEqual(body, want) {
		t.Errorf("body = %v, want %v", body, want)
	}
}

func TestMergeCommandsEmpty(t *testing.T) {
	body := MergeCommands()
	if len(body) != 0 {
		t.Errorf("body = %v, want empty", body)
	}
}

func TestMirekCommandMatchesFeatureField(t *testing.T) {
	body := Mirek(366).Body()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"color_temperature":{"mirek":366}}` {
		t.Errorf("body = %s", raw)
	}

	// The fragment lands on the same field the feature struct reads back.
	var ct struct {
		ColorTemperature ColorTemperature `json:"color_temperature"`
	}
	if err := json.Unmarshal(raw, &ct); err != nil {
		t.Fatal(err)
	}
	if ct.ColorTemperature.Mirek != 366 {
		t.Errorf("mirek = %d, want 366", ct.ColorTemperature.Mirek)
	}
}

func TestChildrenCommand(t *testing.T) {
	body := Children([]ResourceRef{{ID: "abc", Type: RTypeLight}}).Body()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"children":[{"rid":"abc","rtype":"light"}]}`
	if string(raw) != want {
		t.Errorf("body = %s, want %s", raw, want)
	}
}
