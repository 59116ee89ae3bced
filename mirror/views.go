package mirror

import (
	"context"

	"github.com/nvasilev/huemirror/clip"
)

// Views pair a cached entry with the client it came from, so callers can act
// on a resource without assembling refs and commands by hand. A view's Data
// is the snapshot taken at lookup time; it does not update in place.

// LightView is a light together with the client that mirrors it.
type LightView struct {
	Data clip.Light
	c    *Client
}

// LightView looks up a cached light and wraps it for control.
func (c *Client) LightView(id string) (LightView, bool) {
	l, ok := c.Light(id)
	return LightView{Data: l, c: c}, ok
}

func (v LightView) On(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.On(true))
	return err
}

func (v LightView) Off(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.On(false))
	return err
}

// Toggle flips the light relative to its cached state.
func (v LightView) Toggle(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.On(!v.Data.IsOn()))
	return err
}

// Identify makes the light breathe once so it can be picked out of a room.
func (v LightView) Identify(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.Identify())
	return err
}

func (v LightView) Send(ctx context.Context, commands ...clip.Command) ([]clip.ResourceRef, error) {
	return v.c.Send(ctx, v.Data.Ref(), commands...)
}

// GroupView is a room or zone together with its grouped light control.
type GroupView struct {
	Data clip.Zone
	c    *Client
}

func (c *Client) RoomView(id string) (GroupView, bool) {
	r, ok := c.Room(id)
	return GroupView{Data: r, c: c}, ok
}

func (c *Client) ZoneView(id string) (GroupView, bool) {
	z, ok := c.Zone(id)
	return GroupView{Data: z, c: c}, ok
}

// Send addresses the group's grouped_light service, so on, dimming, and
// color commands fan out to every light in the group.
func (v GroupView) Send(ctx context.Context, commands ...clip.Command) ([]clip.ResourceRef, error) {
	ref, ok := v.Data.GroupedLightRef()
	if !ok {
		return nil, ErrNoGroupedLight
	}
	return v.c.Send(ctx, ref, commands...)
}

func (v GroupView) On(ctx context.Context) error {
	_, err := v.Send(ctx, clip.On(true))
	return err
}

func (v GroupView) Off(ctx context.Context) error {
	_, err := v.Send(ctx, clip.On(false))
	return err
}

// Lights resolves the group's light services against the cache. Lights not
// yet cached are skipped.
func (v GroupView) Lights() []clip.Light {
	var lights []clip.Light
	for _, child := range v.Data.Children {
		if child.Type != clip.RTypeLight {
			continue
		}
		if l, ok := v.c.Light(child.ID); ok {
			lights = append(lights, l)
		}
	}
	return lights
}

// SceneView is a scene together with the client that mirrors it.
type SceneView struct {
	Data clip.Scene
	c    *Client
}

func (c *Client) SceneView(id string) (SceneView, bool) {
	s, ok := c.Scene(id)
	return SceneView{Data: s, c: c}, ok
}

// Recall activates the scene on its group.
func (v SceneView) Recall(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.Recall())
	return err
}

// RecallDynamic activates the scene's dynamic palette.
func (v SceneView) RecallDynamic(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.RecallDynamic())
	return err
}

// GroupedLightView is a grouped light together with the client that mirrors
// it, for callers that hold the service ref directly instead of its room.
type GroupedLightView struct {
	Data clip.GroupedLight
	c    *Client
}

func (c *Client) GroupedLightView(id string) (GroupedLightView, bool) {
	g, ok := c.GroupedLight(id)
	return GroupedLightView{Data: g, c: c}, ok
}

func (v GroupedLightView) On(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.On(true))
	return err
}

func (v GroupedLightView) Off(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.On(false))
	return err
}

func (v GroupedLightView) Toggle(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.On(!v.Data.IsOn()))
	return err
}

func (v GroupedLightView) Send(ctx context.Context, commands ...clip.Command) ([]clip.ResourceRef, error) {
	return v.c.Send(ctx, v.Data.Ref(), commands...)
}

// SmartSceneView is a smart scene together with the client that mirrors it.
type SmartSceneView struct {
	Data clip.SmartScene
	c    *Client
}

func (c *Client) SmartSceneView(id string) (SmartSceneView, bool) {
	s, ok := c.SmartScene(id)
	return SmartSceneView{Data: s, c: c}, ok
}

// Activate starts the smart scene's schedule.
func (v SmartSceneView) Activate(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.Activate())
	return err
}

// Deactivate stops the smart scene's schedule.
func (v SmartSceneView) Deactivate(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.Deactivate())
	return err
}

// DeviceView is a device together with the client that mirrors it.
type DeviceView struct {
	Data clip.Device
	c    *Client
}

func (c *Client) DeviceView(id string) (DeviceView, bool) {
	d, ok := c.Device(id)
	return DeviceView{Data: d, c: c}, ok
}

// Identify blinks the device's lights so it can be located.
func (v DeviceView) Identify(ctx context.Context) error {
	_, err := v.c.Send(ctx, v.Data.Ref(), clip.Identify())
	return err
}

// Lights resolves the device's light services against the cache.
func (v DeviceView) Lights() []clip.Light {
	var lights []clip.Light
	for _, svc := range v.Data.Services {
		if svc.Type != clip.RTypeLight {
			continue
		}
		if l, ok := v.c.Light(svc.ID); ok {
			lights = append(lights, l)
		}
	}
	return lights
}
