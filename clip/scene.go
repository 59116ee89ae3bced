package clip

// Scene is a stored set of light states that can be recalled on its group.
type Scene struct {
	ID          string        `json:"id"`
	IDv1        string        `json:"id_v1,omitempty"`
	Actions     []SceneAction `json:"actions,omitempty"`
	Metadata    SceneMetadata `json:"metadata"`
	Group       ResourceRef   `json:"group"`
	Speed       float64       `json:"speed,omitempty"`
	AutoDynamic bool          `json:"auto_dynamic,omitempty"`
	Status      *SceneStatus  `json:"status,omitempty"`
}

func (s Scene) Ref() ResourceRef {
	return ResourceRef{ID: s.ID, Type: RTypeScene}
}

func (s Scene) Name() string { return s.Metadata.Name }

type SceneMetadata struct {
	Name  string       `json:"name"`
	Image *ResourceRef `json:"image,omitempty"`
}

type SceneStatus struct {
	Active string `json:"active,omitempty"`
}

type SceneAction struct {
	Target ResourceRef `json:"target"`
	Action Action      `json:"action"`
}

// Action is the state applied to one target light when a scene is recalled.
type Action struct {
	On               *LightOn       `json:"on,omitempty"`
	Dimming          *DimmingAction `json:"dimming,omitempty"`
	Color            *ColorAction   `json:"color,omitempty"`
	ColorTemperature *MirekAction   `json:"color_temperature,omitempty"`
}

type DimmingAction struct {
	Brightness float64 `json:"brightness"`
}

type ColorAction struct {
	XY XY `json:"xy"`
}

type MirekAction struct {
	Mirek int `json:"mirek"`
}

// SceneBuilder is the creation document for a new scene.
type SceneBuilder struct {
	Metadata SceneMetadata `json:"metadata"`
	Group    ResourceRef   `json:"group"`
	Actions  []SceneAction `json:"actions"`
	Speed    float64       `json:"speed,omitempty"`
}

func NewScene(name string, group ResourceRef) SceneBuilder {
	return SceneBuilder{
		Metadata: SceneMetadata{Name: name},
		Group:    group,
		Actions:  []SceneAction{},
	}
}

func (b SceneBuilder) WithAction(target ResourceRef, action Action) SceneBuilder {
	b.Actions = append(b.Actions, SceneAction{Target: target, Action: action})
	return b
}

// Body renders the builder as a creation request body.
func (b SceneBuilder) Body() map[string]any { return toBody(b) }

// SmartScene cycles through scenes on a schedule of day timeslots.
type SmartScene struct {
	ID             string          `json:"id"`
	Metadata       SceneMetadata   `json:"metadata"`
	Group          ResourceRef     `json:"group"`
	State          string          `json:"state,omitempty"`
	ActiveTimeslot *ActiveTimeslot `json:"active_timeslot,omitempty"`
}

func (s SmartScene) Ref() ResourceRef {
	return ResourceRef{ID: s.ID, Type: RTypeSmartScene}
}

type ActiveTimeslot struct {
	TimeslotID int    `json:"timeslot_id"`
	Weekday    string `json:"weekday,omitempty"`
}
