package clip

// Zone is a user-defined grouping of services; Room is the same shape with
// the constraint (enforced by the bridge) that a device belongs to only one
// room.
type Zone struct {
	ID       string        `json:"id"`
	IDv1     string        `json:"id_v1,omitempty"`
	Children []ResourceRef `json:"children"`
	Services []ResourceRef `json:"services,omitempty"`
	Metadata ZoneMetadata  `json:"metadata"`
}

type Room = Zone

func (z Zone) Name() string { return z.Metadata.Name }

// GroupedLightRef returns the grouped_light service controlling this room or
// zone as a whole, if it has one.
func (z Zone) GroupedLightRef() (ResourceRef, bool) {
	for _, svc := range z.Services {
		if svc.Type == RTypeGroupedLight {
			return svc, true
		}
	}
	return ResourceRef{}, false
}

type ZoneMetadata struct {
	Name      string `json:"name"`
	Archetype string `json:"archetype,omitempty"`
}

// ZoneBuilder is the creation document for a new room or zone.
type ZoneBuilder struct {
	Metadata ZoneMetadata  `json:"metadata"`
	Children []ResourceRef `json:"children"`
}

func NewZone(name, archetype string) ZoneBuilder {
	return ZoneBuilder{
		Metadata: ZoneMetadata{Name: name, Archetype: archetype},
		Children: []ResourceRef{},
	}
}

func (b ZoneBuilder) WithChildren(children ...ResourceRef) ZoneBuilder {
	b.Children = append(b.Children, children...)
	return b
}

// Body renders the builder as a creation request body.
func (b ZoneBuilder) Body() map[string]any { return toBody(b) }

// GroupedLight is the joined light control of a room, zone, or the whole
// home.
type GroupedLight struct {
	ID      string       `json:"id"`
	IDv1    string       `json:"id_v1,omitempty"`
	Owner   *ResourceRef `json:"owner,omitempty"`
	On      *LightOn     `json:"on,omitempty"`
	Dimming *Dimming     `json:"dimming,omitempty"`
}

func (g GroupedLight) Ref() ResourceRef {
	return ResourceRef{ID: g.ID, Type: RTypeGroupedLight}
}

func (g GroupedLight) IsOn() bool {
	return g.On != nil && g.On.On
}

// BridgeHome is the root grouping containing every device paired with the
// bridge.
type BridgeHome struct {
	ID       string        `json:"id"`
	IDv1     string        `json:"id_v1,omitempty"`
	Children []ResourceRef `json:"children"`
	Services []ResourceRef `json:"services,omitempty"`
}
