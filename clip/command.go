package clip

import "time"

// Command is a single typed write operation. Each command serializes to one
// JSON object fragment of a CLIP v2 update body; fragments are kind-agnostic,
// so the same On command works against a light and a grouped light.
type Command interface {
	Body() map[string]any
}

type fragment map[string]any

func (f fragment) Body() map[string]any { return f }

// MergeCommands folds commands into a single merge-patch document suitable
// for one PUT request. Later commands override earlier ones on conflicting
// fields.
func MergeCommands(commands ...Command) map[string]any {
	body := map[string]any{}
	for _, cmd := range commands {
		body = MergePatch(body, cmd.Body())
	}
	return body
}

// On sets the power state.
func On(on bool) Command {
	return fragment{"on": map[string]any{"on": on}}
}

// Brightness sets the absolute brightness percentage, 0 to 100.
func Brightness(pct float64) Command {
	return fragment{"dimming": map[string]any{"brightness": pct}}
}

// Mirek sets the color temperature in mirek, 153 to 500.
func Mirek(mirek int) Command {
	return fragment{"color_temperature": map[string]any{"mirek": mirek}}
}

// ColorXY sets the CIE XY gamut position, each coordinate 0.0 to 1.0.
func ColorXY(x, y float64) Command {
	return fragment{"color": map[string]any{"xy": map[string]any{"x": x, "y": y}}}
}

// TransitionDuration sets the transition time applied to the rest of the
// update it is merged with.
func TransitionDuration(d time.Duration) Command {
	return fragment{"dynamics": map[string]any{"duration": int(d.Milliseconds())}}
}

// Effect applies a light effect such as "candle" or "fire"; "no_effect"
// clears it.
func Effect(effect string) Command {
	return fragment{"effects": map[string]any{"effect": effect}}
}

// Identify triggers the visual identification sequence: lights perform one
// breathe cycle, sensors blink their LED.
func Identify() Command {
	return fragment{"identify": map[string]any{"action": "identify"}}
}

// Alert runs the breathe alert effect.
func Alert() Command {
	return fragment{"alert": map[string]any{"action": "breathe"}}
}

// Recall activates a scene.
func Recall() Command {
	return fragment{"recall": map[string]any{"action": "active"}}
}

// RecallDynamic activates a scene's dynamic palette.
func RecallDynamic() Command {
	return fragment{"recall": map[string]any{"action": "dynamic_palette"}}
}

// Activate starts a smart scene's schedule.
func Activate() Command {
	return fragment{"recall": map[string]any{"action": "activate"}}
}

// Deactivate stops a smart scene's schedule.
func Deactivate() Command {
	return fragment{"recall": map[string]any{"action": "deactivate"}}
}

// Rename updates a resource's metadata name.
func Rename(name string) Command {
	return fragment{"metadata": map[string]any{"name": name}}
}

// Children replaces the child services of a room or zone.
func Children(refs []ResourceRef) Command {
	children := make([]any, len(refs))
	for i, ref := range refs {
		children[i] = map[string]any{"rid": ref.ID, "rtype": string(ref.Type)}
	}
	return fragment{"children": children}
}

// Enabled toggles a sensor service such as motion or temperature.
func Enabled(enabled bool) Command {
	return fragment{"enabled": enabled}
}
