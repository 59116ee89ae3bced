package clip

// Light is a controllable bulb, strip, or other light service.
type Light struct {
	ID               string            `json:"id"`
	IDv1             string            `json:"id_v1,omitempty"`
	Owner            *ResourceRef      `json:"owner,omitempty"`
	Metadata         *LightMetadata    `json:"metadata,omitempty"`
	On               *LightOn          `json:"on,omitempty"`
	Dimming          *Dimming          `json:"dimming,omitempty"`
	Color            *Color            `json:"color,omitempty"`
	ColorTemperature *ColorTemperature `json:"color_temperature,omitempty"`
	Dynamics         *Dynamics         `json:"dynamics,omitempty"`
	Alert            *AlertState       `json:"alert,omitempty"`
	Mode             string            `json:"mode,omitempty"`
	Effects          *EffectState      `json:"effects,omitempty"`
}

func (l Light) Ref() ResourceRef {
	return ResourceRef{ID: l.ID, Type: RTypeLight}
}

// IsOn reports the power state; a light with no on feature reads as off.
func (l Light) IsOn() bool {
	return l.On != nil && l.On.On
}

func (l Light) Name() string {
	if l.Metadata == nil {
		return ""
	}
	return l.Metadata.Name
}

type LightMetadata struct {
	Name      string `json:"name"`
	Archetype string `json:"archetype,omitempty"`
}

type LightOn struct {
	On bool `json:"on"`
}

type Dimming struct {
	Brightness  float64 `json:"brightness"`
	MinDimLevel float64 `json:"min_dim_level,omitempty"`
}

type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Gamut struct {
	Red   XY `json:"red"`
	Green XY `json:"green"`
	Blue  XY `json:"blue"`
}

type Color struct {
	XY        XY     `json:"xy"`
	Gamut     *Gamut `json:"gamut,omitempty"`
	GamutType string `json:"gamut_type,omitempty"`
}

type ColorTemperature struct {
	Mirek       int          `json:"mirek"`
	MirekValid  bool         `json:"mirek_valid"`
	MirekSchema *MirekSchema `json:"mirek_schema,omitempty"`
}

type MirekSchema struct {
	Min int `json:"mirek_minimum"`
	Max int `json:"mirek_maximum"`
}

type Dynamics struct {
	Status     string  `json:"status,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
	SpeedValid bool    `json:"speed_valid,omitempty"`
}

type AlertState struct {
	ActionValues []string `json:"action_values,omitempty"`
}

type EffectState struct {
	Status       string   `json:"status,omitempty"`
	EffectValues []string `json:"effect_values,omitempty"`
}
