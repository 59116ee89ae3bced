package clip

// Button is one physical control on a switch or dimmer; a device exposes one
// button service per control.
type Button struct {
	ID       string          `json:"id"`
	IDv1     string          `json:"id_v1,omitempty"`
	Owner    *ResourceRef    `json:"owner,omitempty"`
	Metadata *ButtonMetadata `json:"metadata,omitempty"`
	Button   *ButtonFeature  `json:"button,omitempty"`
}

type ButtonMetadata struct {
	ControlID int `json:"control_id"`
}

type ButtonFeature struct {
	Report      *ButtonReport `json:"button_report,omitempty"`
	EventValues []string      `json:"event_values,omitempty"`
}

type ButtonReport struct {
	Updated string `json:"updated,omitempty"`
	Event   string `json:"event,omitempty"`
}

type RelativeRotary struct {
	ID             string         `json:"id"`
	Owner          *ResourceRef   `json:"owner,omitempty"`
	RelativeRotary *RotaryFeature `json:"relative_rotary,omitempty"`
}

type RotaryFeature struct {
	Report *RotaryReport `json:"rotary_report,omitempty"`
}

type RotaryReport struct {
	Updated  string          `json:"updated,omitempty"`
	Action   string          `json:"action,omitempty"`
	Rotation *RotaryRotation `json:"rotation,omitempty"`
}

type RotaryRotation struct {
	Direction string `json:"direction,omitempty"`
	Steps     int    `json:"steps,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// Motion is a presence sensor service; CameraMotion shares the shape.
type Motion struct {
	ID          string         `json:"id"`
	IDv1        string         `json:"id_v1,omitempty"`
	Owner       *ResourceRef   `json:"owner,omitempty"`
	Enabled     bool           `json:"enabled"`
	Motion      *MotionFeature `json:"motion,omitempty"`
	Sensitivity *Sensitivity   `json:"sensitivity,omitempty"`
}

type CameraMotion = Motion

type MotionFeature struct {
	Report *MotionReport `json:"motion_report,omitempty"`
}

type MotionReport struct {
	Changed string `json:"changed,omitempty"`
	Motion  bool   `json:"motion"`
}

type Sensitivity struct {
	Status         string `json:"status,omitempty"`
	Sensitivity    int    `json:"sensitivity"`
	SensitivityMax int    `json:"sensitivity_max,omitempty"`
}

type Contact struct {
	ID            string         `json:"id"`
	Owner         *ResourceRef   `json:"owner,omitempty"`
	Enabled       bool           `json:"enabled"`
	ContactReport *ContactReport `json:"contact_report,omitempty"`
}

type ContactReport struct {
	Changed string `json:"changed,omitempty"`
	State   string `json:"state,omitempty"`
}

type Tamper struct {
	ID            string         `json:"id"`
	Owner         *ResourceRef   `json:"owner,omitempty"`
	TamperReports []TamperReport `json:"tamper_reports,omitempty"`
}

type TamperReport struct {
	Changed string `json:"changed,omitempty"`
	Source  string `json:"source,omitempty"`
	State   string `json:"state,omitempty"`
}

type Temperature struct {
	ID          string              `json:"id"`
	Owner       *ResourceRef        `json:"owner,omitempty"`
	Enabled     bool                `json:"enabled"`
	Temperature *TemperatureFeature `json:"temperature,omitempty"`
}

type TemperatureFeature struct {
	Report *TemperatureReport `json:"temperature_report,omitempty"`
}

type TemperatureReport struct {
	Changed     string  `json:"changed,omitempty"`
	Temperature float64 `json:"temperature"`
}

type LightLevel struct {
	ID      string             `json:"id"`
	Owner   *ResourceRef       `json:"owner,omitempty"`
	Enabled bool               `json:"enabled"`
	Light   *LightLevelFeature `json:"light,omitempty"`
}

type LightLevelFeature struct {
	Report *LightLevelReport `json:"light_level_report,omitempty"`
}

type LightLevelReport struct {
	Changed    string `json:"changed,omitempty"`
	LightLevel int    `json:"light_level"`
}
